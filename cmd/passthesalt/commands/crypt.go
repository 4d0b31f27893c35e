package commands

import (
	"github.com/icasdri/passthesalt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func addCryptFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("me", "i", "", "Your private key file")
	cmd.Flags().StringP("them", "t", "", "Their public key (directly or from a file)")
	cmd.Flags().StringP("output-file", "o", "", "Output file (leave off to print to stdout)")
}

func (c *cli) newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [INPUT_FILE]",
		Short: "Encrypt a message to a recipient's public key",
		Long: `Encrypt a message to a recipient's public key.

The input is read from INPUT_FILE, or from stdin when it is left off. The
encrypted message is written as a single line of URL-safe base64.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.encrypt,
	}
	addCryptFlags(cmd)
	return cmd
}

func (c *cli) newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [INPUT_FILE]",
		Short: "Decrypt a message from a sender's public key",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.decrypt,
	}
	addCryptFlags(cmd)
	return cmd
}

func (c *cli) encrypt(cmd *cobra.Command, args []string) error {
	them, me, err := c.keys()
	if err != nil {
		return err
	}

	plaintext, err := c.readInput(args)
	if err != nil {
		return err
	}

	envelope, err := passthesalt.Encrypt(them, me, plaintext)
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"in_bytes":  len(plaintext),
		"out_bytes": len(envelope),
	}).Debug("encrypted")

	return c.writeOutput([]byte(envelope + "\n"))
}

func (c *cli) decrypt(cmd *cobra.Command, args []string) error {
	them, me, err := c.keys()
	if err != nil {
		return err
	}

	envelope, err := c.readInput(args)
	if err != nil {
		return err
	}

	plaintext, err := passthesalt.Decrypt(them, me, string(envelope))
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"in_bytes":  len(envelope),
		"out_bytes": len(plaintext),
	}).Debug("decrypted")

	return c.writeOutput(plaintext)
}
