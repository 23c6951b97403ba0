// rekey re-encrypts the .cwt secure store under a new passphrase.
// The daemon must be stopped while it runs.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/walletd/internal/config"
	"github.com/AlexZinkM/walletd/internal/crypto"
	filestore "github.com/AlexZinkM/walletd/internal/kvstore/file"

	"github.com/urfave/cli/v2"
)

var (
	pathFlag = &cli.StringFlag{
		Name:    "path",
		Usage:   "path to the .cwt store file",
		Value:   "wallet.cwt",
		EnvVars: []string{"STORE_PATH"},
	}
	costFlag = &cli.IntFlag{
		Name:  "cost",
		Usage: "scrypt cost as log2(N) for the new key, 0 keeps the current one",
		Value: 0,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "rekey"
	app.Usage = "re-encrypt the wallet store with a new passphrase"
	app.Flags = []cli.Flag{pathFlag, costFlag}
	app.Action = rekey

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rekey(ctx *cli.Context) error {
	cost := ctx.Int("cost")
	if cost != 0 && (cost < 10 || cost > 20) {
		return fmt.Errorf("cost must be between 10 and 20, got %d", cost)
	}

	oldPass, err := config.ReadHidden("Current passphrase: ")
	if err != nil {
		return err
	}
	defer clear(oldPass)

	newPass, err := config.ReadHidden("New passphrase: ")
	if err != nil {
		return err
	}
	defer clear(newPass)

	confirm, err := config.ReadHidden("Repeat new passphrase: ")
	if err != nil {
		return err
	}
	defer clear(confirm)

	if !bytes.Equal(newPass, confirm) {
		return errors.New("passphrases do not match")
	}

	path := ctx.String("path")
	if err := filestore.Rekey(path, oldPass, newPass, cost); err != nil {
		if errors.Is(err, crypto.ErrInvalidPassword) {
			return errors.New("current passphrase is wrong")
		}
		return err
	}
	fmt.Fprintf(os.Stderr, "%s re-encrypted\n", path)
	return nil
}
