package commands

import (
	"errors"
	"fmt"

	"github.com/icasdri/passthesalt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (c *cli) newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate new keys and other key-related operations",
		Args:  cobra.NoArgs,
		RunE:  c.key,
	}

	cmd.Flags().BoolP("new", "n", false, "Generate new public/private key pair")
	cmd.Flags().BoolP("show", "s", false, "Print the public key of the private key given by --me")
	cmd.Flags().StringP("output-private", "o", "", "File to write the new private key to (printed by default)")
	cmd.Flags().StringP("me", "i", "", "Your private key file")

	cmd.MarkFlagsMutuallyExclusive("new", "show")
	cmd.MarkFlagsOneRequired("new", "show")

	return cmd
}

func (c *cli) key(cmd *cobra.Command, args []string) error {
	show, err := cmd.Flags().GetBool("show")
	if err != nil {
		return err
	}
	if show {
		if c.conf.OutputPrivate != "" {
			return errors.New("--output-private requires --new")
		}
		return c.showKey()
	}
	return c.newKey()
}

func (c *cli) newKey() error {
	pub, priv, err := passthesalt.GenerateKeypair()
	if err != nil {
		return err
	}

	if c.conf.OutputPrivate == "" {
		_, err := fmt.Fprintf(c.io.Stdout, "public key:\n%s\nprivate key:\n%s\n", pub, priv)
		return err
	}

	if err := writeNewFile(c.conf.OutputPrivate, []byte(priv+"\n")); err != nil {
		return err
	}
	c.logger.WithField("file", c.conf.OutputPrivate).Info("private key written")

	_, err = fmt.Fprintf(c.io.Stdout, "public key:\n%s\n", pub)
	return err
}

func (c *cli) showKey() error {
	if c.conf.Me == "" {
		return errMissingMe
	}

	priv, err := readPrivateKeyFile(c.conf.Me)
	if err != nil {
		return err
	}

	pub, err := passthesalt.PublicKeyFromPrivate(priv)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.io.Stdout, pub)
	return err
}

// keys resolves the private key file and peer public key for encrypt and
// decrypt.
func (c *cli) keys() (them, me string, err error) {
	if c.conf.Me == "" {
		return "", "", errMissingMe
	}
	if c.conf.Them == "" {
		return "", "", errMissingThem
	}

	them, fromFile, err := resolvePublicKey(c.conf.Them)
	if err != nil {
		return "", "", err
	}
	c.logger.WithFields(logrus.Fields{
		"from_file": fromFile,
	}).Debug("resolved public key")

	me, err = readPrivateKeyFile(c.conf.Me)
	if err != nil {
		return "", "", err
	}

	return them, me, nil
}
