package cmd

import (
	"fmt"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/zehraz1/portfolio/internal/content"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Print the profile links",
	Long: `Print the GitHub and LinkedIn links and the contact address.

With --qr each link is followed by a QR code for scanning with a phone.`,
	Args: cobra.NoArgs,
	RunE: runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)

	linksCmd.Flags().Bool("qr", false, "render a QR code for each link")
}

func runLinks(cmd *cobra.Command, _ []string) error {
	qr, _ := cmd.Flags().GetBool("qr")

	p, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, link := range []struct{ name, url string }{
		{"GitHub", p.Links.GitHub},
		{"LinkedIn", p.Links.LinkedIn},
		{"Email", mailto(p.ContactEmail)},
	} {
		if link.url == "" {
			continue
		}
		_, _ = fmt.Fprintf(out, "%-9s %s\n", link.name+":", link.url)
		if qr {
			qrterminal.GenerateHalfBlock(link.url, qrterminal.L, out)
			_, _ = fmt.Fprintln(out)
		}
	}
	return nil
}

func mailto(addr string) string {
	if addr == "" {
		return ""
	}
	return "mailto:" + addr
}
