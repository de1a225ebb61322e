package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"hashpass.local/internal/app/hashpass"
)

const usageLine = "Usage: hashpass <password>"

var errMissingPassword = errors.New("missing password argument")

// newRootCmd 只有一个位置参数：密码，原样哈希。
// 没有任何 flag：-h、--version 之类也是合法密码。
func newRootCmd(h *hashpass.Hasher) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashpass <password>",
		Short: fmt.Sprintf("Print the bcrypt hash (cost %d) of a password", hashpass.Cost),
		// 多余的参数忽略，缺少参数由 RunE 处理，以便输出 usage
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errMissingPassword
			}
			hash, err := h.Hash(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}

// positional puts every user argument behind "--" so cobra never treats a password
// as a flag (-h, --help) or as its hidden __complete command.
func positional(args []string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, "--")
	return append(out, args...)
}
