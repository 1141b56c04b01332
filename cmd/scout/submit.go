package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/scoutclear/scout/internal/brand"
	"github.com/scoutclear/scout/internal/contactform"
)

var formFlags = []struct {
	flag  string
	field contactform.Field
	usage string
}{
	{"name", contactform.FieldName, "Your name"},
	{"company", contactform.FieldCompany, "Company or HOA"},
	{"email", contactform.FieldEmail, "Reply-to email address"},
	{"phone", contactform.FieldPhone, "Phone number (formatted as you type on the site)"},
	{"address", contactform.FieldPropertyAddress, "Property address"},
	{"message", contactform.FieldMessage, "What you need"},
}

func initSubmitFlags(cmd *cobra.Command) {
	for _, f := range formFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

// fillForm copies flag values into the controller the same way typing would
func fillForm(cmd *cobra.Command, c *contactform.Controller) error {
	for _, f := range formFlags {
		value, _ := cmd.Flags().GetString(f.flag)
		if value == "" {
			continue
		}
		if err := c.UpdateField(f.field, value); err != nil {
			return err
		}
	}
	return nil
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a contact form submission",
	Long: `Send a contact form submission to a running SCOUT API.

Example:
  scout submit --name "Jane Doe" --email jane@x.com --message "Need quote"
  scout submit --endpoint https://api.scoutclear.com/api/contact --name ...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")

		c := contactform.New(endpoint, &http.Client{Timeout: 30 * time.Second})
		if err := fillForm(cmd, c); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending..."
		s.Start()
		err := c.Submit(ctx)
		s.Stop()

		fmt.Println(c.Message())
		if err != nil {
			logger.Debug("Submission failed: %v", err)
			return fmt.Errorf("submission failed: %w", err)
		}
		return nil
	},
}

var mailtoCmd = &cobra.Command{
	Use:   "mailto",
	Short: "Print the mailto: fallback link for a form",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBrand(cmd)
		if err != nil {
			return err
		}

		c := contactform.New("", nil)
		if err := fillForm(cmd, c); err != nil {
			return err
		}

		fmt.Println(brand.MailtoHref(b, c.Form()))
		return nil
	},
}

func loadBrand(cmd *cobra.Command) (brand.Brand, error) {
	path, _ := cmd.Flags().GetString("brand-file")
	return brand.Load(path)
}
