package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sakib9797/Hire-Skill/internal/careers"
	"github.com/Sakib9797/Hire-Skill/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest URL [URL...]",
	Short: "Ingest live job postings into a corpus",
	Long: "Fetches job-posting URLs, extracts title, skills, and posting metadata, " +
		"and writes the resulting corpus as JSON (or into the configured database).",
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

var (
	ingestOut     string
	ingestBrowser bool
	ingestSave    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Write the corpus JSON to a file (default stdout)")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Use a headless browser for JavaScript-rendered boards")
	ingestCmd.Flags().BoolVar(&ingestSave, "save", false, "Save postings to the configured database")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ingestor := ingest.NewIngestor(ingest.IngestorConfig{
		SkillVocabulary: careers.AllSkills(),
		AllowBrowser:    ingestBrowser || cfg.UseBrowser,
	}, log)

	postings, err := ingestor.IngestURLs(cmd.Context(), args)
	if err != nil {
		return err
	}

	log.Info("ingest complete", zap.Int("postings", len(postings)))

	if ingestSave {
		if err := saveJobsToStore(cmd.Context(), postings); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved %d postings to database\n", len(postings))
		return nil
	}
	return writeJSON(ingestOut, postings)
}
