package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodworkapp/goodwork/internal/config"
)

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the career profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/profile")
		if err != nil {
			return err
		}

		var doc any
		if err := decodeJSON(resp, &doc); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a profile field (e.g. personal.beruf, identity.staerken)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.patch(cmd.Context(), "/profile", map[string]string{key: value})
		if err != nil {
			return err
		}

		var doc any
		if err := decodeJSON(resp, &doc); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

var profileResumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Extract profile text from a resume (PDF or HTML)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		var contentType string
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf":
			contentType = "application/pdf"
		case ".html", ".htm":
			contentType = "text/html"
		default:
			return fmt.Errorf("unsupported file type %q (need .pdf or .html)", filepath.Ext(path))
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.postRaw(cmd.Context(), "/profile/resume", contentType, data)
		if err != nil {
			return err
		}

		var result struct {
			Text string `json:"text"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result.Text)
		printSuccess("Extracted %d characters from %s", len(result.Text), path)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileResumeCmd)
}

// --- screening ---

var screeningCmd = &cobra.Command{
	Use:   "screening",
	Short: "Submit screening ratings",
}

var screeningSubmitCmd = &cobra.Command{
	Use:   "submit <instrument> <ratings.json>",
	Short: "Submit ratings for riasec, bigfive, motivation or futureskills",
	Long: `Submit screening ratings from a JSON file mapping item IDs to values.

Example file:
  {"r1": 7, "r2": 3, "r3": 9}

Examples:
  goodwork screening submit riasec ./riasec.json
  goodwork screening submit bigfive ./bigfive.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		instrument, path := args[0], args[1]

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading ratings file: %w", err)
		}
		var ratings map[string]int
		if err := json.Unmarshal(data, &ratings); err != nil {
			return fmt.Errorf("invalid ratings JSON: %w", err)
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/screenings/"+instrument, map[string]any{"ratings": ratings})
		if err != nil {
			return err
		}

		var doc map[string]any
		if err := decodeJSON(resp, &doc); err != nil {
			return err
		}

		printSuccess("Submitted %d ratings for %s", len(ratings), instrument)
		if riasec, ok := doc["riasec"].(map[string]any); ok && instrument == "riasec" {
			if holland, ok := riasec["holland"].(map[string]any); ok {
				if code, ok := holland["code"].(string); ok && code != "" {
					printStatus("Holland code", "%s", code)
				}
			}
		}
		return nil
	},
}

func init() {
	screeningCmd.AddCommand(screeningSubmitCmd)
}

// --- report ---

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate and inspect AI reports",
}

var reportGenerateCmd = &cobra.Command{
	Use:   "generate <kind>",
	Short: "Generate a single report",
	Long: `Generate a single report. Kinds include riasec_report, personality_report,
motivation_report, futureskills_report, identity_report, coaching_tips,
decision_matrix and culture_match.

Examples:
  goodwork report generate riasec_report
  goodwork report generate decision_matrix --question "Bleiben oder wechseln?" --option Bleiben --option Wechseln
  goodwork report generate culture_match --company "ACME GmbH" --culture "flache Hierarchien"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		options, _ := cmd.Flags().GetStringArray("option")
		company, _ := cmd.Flags().GetString("company")
		culture, _ := cmd.Flags().GetString("culture")

		body := map[string]any{}
		if question != "" {
			body["decisionQuestion"] = question
		}
		if len(options) > 0 {
			body["decisionOptions"] = options
		}
		if company != "" {
			body["companyName"] = company
		}
		if culture != "" {
			body["companyCulture"] = culture
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		printStep("Generating %s...", args[0])
		resp, err := client.post(cmd.Context(), "/reports/"+args[0], body)
		if err != nil {
			return err
		}

		var result struct {
			Content string `json:"content"`
			Failed  bool   `json:"failed"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result.Content)
		if result.Failed {
			printWarning("The model reported an error, the message above was stored as-is")
		} else {
			printSuccess("Report %s generated", args[0])
		}
		return nil
	},
}

var reportAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every report the profile has data for",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		printStep("Generating all available reports...")
		resp, err := client.post(cmd.Context(), "/reports", nil)
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Reports generated")
		return nil
	},
}

var reportHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past report generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := fmt.Sprintf("/reports/history?limit=%d", limit)
		if kind != "" {
			path += "&kind=" + kind
		}
		resp, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var records []struct {
			ID        string `json:"id"`
			Kind      string `json:"kind"`
			CreatedAt string `json:"created_at"`
		}
		if err := decodeJSON(resp, &records); err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No reports generated yet.")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %s  %s\n", colorize(colorCyan, rec.ID[:8]), rec.CreatedAt, rec.Kind)
		}
		return nil
	},
}

func init() {
	reportGenerateCmd.Flags().String("question", "", "decision question (decision_matrix)")
	reportGenerateCmd.Flags().StringArray("option", nil, "decision option, repeatable (decision_matrix)")
	reportGenerateCmd.Flags().String("company", "", "company name (culture_match)")
	reportGenerateCmd.Flags().String("culture", "", "company culture description (culture_match)")
	reportHistoryCmd.Flags().String("kind", "", "filter by report kind")
	reportHistoryCmd.Flags().Int("limit", 20, "maximum number of entries")

	reportCmd.AddCommand(reportGenerateCmd)
	reportCmd.AddCommand(reportAllCmd)
	reportCmd.AddCommand(reportHistoryCmd)
}

// --- valou ---

var valouCmd = &cobra.Command{
	Use:   "valou",
	Short: "Work with the Valou life areas",
}

var valouStylingCmd = &cobra.Command{
	Use:   "styling [area]",
	Short: "Suggest styling sentences (all areas, or one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			resp, err := client.post(cmd.Context(), "/valou/"+args[0]+"/styling", nil)
			if err != nil {
				return err
			}
			var result map[string]string
			if err := decodeJSON(resp, &result); err != nil {
				return err
			}
			printSuccess("Styling for %s: %s", args[0], result["stylingSatz"])
			return nil
		}

		printStep("Suggesting styling for all areas...")
		resp, err := client.post(cmd.Context(), "/valou/styling", nil)
		if err != nil {
			return err
		}
		var doc any
		if err := decodeJSON(resp, &doc); err != nil {
			return err
		}
		printSuccess("Styling suggestions applied")
		return nil
	},
}

var valouSuggestCmd = &cobra.Command{
	Use:   "suggest <area> <category>",
	Short: "Suggest entries for one area category (vorlieben, abneigungen, mustHaves, noGos)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		area, category := args[0], args[1]

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/valou/"+area+"/suggestions", map[string]string{"category": category})
		if err != nil {
			return err
		}

		var result struct {
			Suggestions []string `json:"suggestions"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		if len(result.Suggestions) == 0 {
			fmt.Println("No new suggestions.")
			return nil
		}
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
		printSuccess("%d suggestions added to %s/%s", len(result.Suggestions), area, category)
		return nil
	},
}

func init() {
	valouCmd.AddCommand(valouStylingCmd)
	valouCmd.AddCommand(valouSuggestCmd)
}

// --- jobs ---

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search for matching jobs",
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run an AI-assisted job search against the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		region, _ := cmd.Flags().GetString("region")
		employment, _ := cmd.Flags().GetString("type")
		keywordsStr, _ := cmd.Flags().GetString("keywords")

		var keywords []string
		if keywordsStr != "" {
			keywords = strings.Split(keywordsStr, ",")
			for i := range keywords {
				keywords[i] = strings.TrimSpace(keywords[i])
			}
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		printStep("Searching jobs...")
		resp, err := client.post(cmd.Context(), "/jobs/search", map[string]any{
			"region":         region,
			"employmentType": employment,
			"keywords":       keywords,
		})
		if err != nil {
			return err
		}

		var matches []struct {
			Title          string `json:"title"`
			Company        string `json:"company"`
			Location       string `json:"location"`
			URL            string `json:"url"`
			MatchingDegree string `json:"matchingDegree"`
		}
		if err := decodeJSON(resp, &matches); err != nil {
			return err
		}

		if len(matches) == 0 {
			fmt.Println("No matches found.")
			return nil
		}
		for i, m := range matches {
			fmt.Printf("\n%s %s\n", colorize(colorBold, fmt.Sprintf("%d.", i+1)), m.Title)
			fmt.Printf("   %s, %s (%s)\n", m.Company, m.Location, m.MatchingDegree)
			if m.URL != "" && m.URL != "N/A" {
				fmt.Printf("   %s\n", m.URL)
			}
		}
		return nil
	},
}

func init() {
	jobsSearchCmd.Flags().String("region", "", "region to search in")
	jobsSearchCmd.Flags().String("type", "", "employment type (e.g. Vollzeit, Teilzeit)")
	jobsSearchCmd.Flags().String("keywords", "", "comma-separated keywords")
	jobsCmd.AddCommand(jobsSearchCmd)
}

// --- logbook ---

var logbookCmd = &cobra.Command{
	Use:   "logbook",
	Short: "Keep notes alongside the coaching process",
}

var logbookAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a logbook entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		text := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/logbook", map[string]string{"title": title, "text": text})
		if err != nil {
			return err
		}

		var entry struct {
			ID string `json:"id"`
		}
		if err := decodeJSON(resp, &entry); err != nil {
			return err
		}

		printSuccess("Added entry %s", entry.ID)
		return nil
	},
}

var logbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logbook entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/logbook")
		if err != nil {
			return err
		}

		var entries []struct {
			ID        string `json:"id"`
			CreatedAt string `json:"createdAt"`
			Title     string `json:"title"`
			Text      string `json:"text"`
		}
		if err := decodeJSON(resp, &entries); err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No logbook entries.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  %s\n", colorize(colorCyan, e.ID[:8]), e.CreatedAt, truncate(e.Text, 80))
		}
		return nil
	},
}

var logbookDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logbook entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.delete(cmd.Context(), "/logbook/"+args[0])
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Deleted entry %s", args[0])
		return nil
	},
}

func init() {
	logbookAddCmd.Flags().String("title", "", "entry title")
	logbookCmd.AddCommand(logbookAddCmd)
	logbookCmd.AddCommand(logbookListCmd)
	logbookCmd.AddCommand(logbookDeleteCmd)
}

// --- export ---

var exportCmd = &cobra.Command{
	Use:   "export <kind>",
	Short: "Export a stored report as Markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/reports/"+args[0]+"/export", nil)
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Exported to %s", result["path"])
		return nil
	},
}

// --- reset ---

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the profile to its initial empty state",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			printWarning("This will delete the ENTIRE profile. Use --yes to proceed.")
			return nil
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/profile/reset?confirm=true", nil)
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Profile reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "confirm the reset")
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		keys := config.ShowAll(cfg)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

var configSetSecretCmd = &cobra.Command{
	Use:   "set-secret <account> <value>",
	Short: "Store a secret (gemini_api_key, api_token) in the platform secret store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetSecret(args[0], args[1]); err != nil {
			return err
		}
		printSuccess("Stored secret %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetSecretCmd)
}
