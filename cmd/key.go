package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plumharbor/daylens/internal/keystore"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the model API key",
	Long: "Stores the model API key in ~/.daylens/api_key (mode 0600). The\n" +
		"DAYLENS_API_KEY environment variable takes precedence over the stored key.",
}

var keySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store the API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !keystore.New().Save(args[0]) {
			return errors.New("could not store the API key")
		}
		fmt.Println("key stored")
		return nil
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether a key is stored (masked)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, ok := keystore.New().Load()
		if !ok {
			fmt.Println("no key stored")
			return nil
		}
		fmt.Println(mask(key))
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keystore.New().Clear()
		fmt.Println("key cleared")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyShowCmd, keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}

// mask hides all but the first and last four characters of a key.
func mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
