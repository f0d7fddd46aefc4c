package cmd

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/db"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

var (
	analyzeComment string
	analyzeNotify  bool
	analyzeForce   bool
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Upload a receipt image for AI analysis",
	Long: `Upload a receipt image and create an AI analysis draft.

Uploaded images are remembered in a local SQLite history keyed by content
hash, so re-running on the same file is skipped unless --force is given.

Example:
  kakeibo analyze receipt.jpg --comment スーパー
  kakeibo analyze receipt.jpg --notify`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeComment, "comment", "", "comment to attach to the upload")
	analyzeCmd.Flags().BoolVar(&analyzeNotify, "notify", false, "request a notification when analysis finishes")
	analyzeCmd.Flags().BoolVar(&analyzeForce, "force", false, "upload even if the image was uploaded before")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	imagePath := args[0]

	image, err := os.ReadFile(imagePath)
	exitOnError(err, "failed to read image file")

	digest := sha256.Sum256(image)
	imageHash := hex.EncodeToString(digest[:])

	client, cfg, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	conn, err := db.Open(cfg.History.DBPath)
	exitOnError(err, "failed to open history database")
	defer conn.Close()
	history := db.NewHistory(conn)

	if !analyzeForce {
		existing, err := history.FindUploadByHash(imageHash)
		exitOnError(err, "failed to check upload history")
		if existing != nil {
			fmt.Printf("Already uploaded as draft %d (%s); use --force to upload again\n",
				existing.DraftID, existing.UploadedAt.Format("2006-01-02 15:04"))
			return
		}
	}

	slog.Debug("uploading image", "path", imagePath, "hash", imageHash)
	result, err := client.Analyze(image, kakeibo.AnalyzeOptions{
		Comment:  analyzeComment,
		Notify:   analyzeNotify,
		Filename: filepath.Base(imagePath),
	})
	exitOnError(err, "failed to analyze image")

	err = history.RecordUpload(db.UploadRecord{
		ImageSHA256: imageHash,
		FileName:    filepath.Base(imagePath),
		DraftID:     result.DraftID,
		Comment:     sql.NullString{String: analyzeComment, Valid: analyzeComment != ""},
	})
	if err != nil {
		slog.Warn("failed to record upload", "error", err)
	}

	fmt.Printf("Created draft %d with %d suggestion(s)\n", result.DraftID, len(result.Suggestions))
	fmt.Printf("Inspect it with: kakeibo draft get %d\n", result.DraftID)
}
