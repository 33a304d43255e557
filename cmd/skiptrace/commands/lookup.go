package commands

import (
	"encoding/json"

	"skiptrace/internal/skiptrace/transport"

	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	var contact transport.Contact

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up a single contact and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := enabledModule()
			if err != nil {
				return err
			}

			result, outcome := module.Service().LookupDetailed(cmd.Context(), contact)
			log.Info("lookup finished", "outcome", string(outcome))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&contact.FirstName, "first", "", "first name")
	flags.StringVar(&contact.MiddleName, "middle", "", "middle name")
	flags.StringVar(&contact.LastName, "last", "", "last name")
	flags.StringVar(&contact.Address, "address", "", "street address")
	flags.StringVar(&contact.City, "city", "", "city")
	flags.StringVar(&contact.State, "state", "", "state name or code")
	flags.StringVar(&contact.Zip, "zip", "", "ZIP or ZIP+4")
	return cmd
}
