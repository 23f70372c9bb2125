package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	reviewmodel "bagelhole-directory/internal/domains/review/model"
	"bagelhole-directory/internal/infrastructure/storage"
)

var (
	submitRestaurant string
	submitName       string
	submitRating     float64
	submitText       string
	submitPhotos     []string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Write reviews",
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a review into the moderation queue",
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitRestaurant, "restaurant", "", "restaurant id")
	submitCmd.Flags().StringVar(&submitName, "name", "", "display name")
	submitCmd.Flags().Float64Var(&submitRating, "rating", 0, "rating, 1-5 (halves allowed)")
	submitCmd.Flags().StringVar(&submitText, "text", "", "review text")
	submitCmd.Flags().StringSliceVar(&submitPhotos, "photo", nil, "photo file to attach; repeatable, up to 4")

	reviewCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Lock the selection to a real catalog entry before reading any
	// photo bytes.
	if submitRestaurant != "" {
		if _, err := app.CatalogService.Get(ctx, submitRestaurant); err != nil {
			return err
		}
	}

	photos, err := readAndNormalizePhotos(submitPhotos)
	if err != nil {
		return err
	}

	pending, err := app.ReviewService.Submit(ctx, reviewmodel.SubmitReviewRequest{
		RestaurantID: submitRestaurant,
		Name:         submitName,
		Rating:       submitRating,
		Text:         submitText,
		Photos:       photos,
	})
	if err != nil {
		var verr *reviewmodel.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid submission, check %s: %s", verr.Field, verr.Message)
		}
		return err
	}

	fmt.Printf("Submitted for moderation (id %s). It will appear publicly after approval.\n", pending.ID)
	return nil
}

// readAndNormalizePhotos loads each photo file and runs the whole batch
// through the normalizer. Per-file failures are reported and skipped;
// the submission proceeds with whatever survived.
func readAndNormalizePhotos(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	files := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read photo %s: %w", path, err)
		}
		files = append(files, data)
	}

	photos, failures := app.ReviewService.AttachPhotos(nil, files)
	for _, f := range failures {
		if errors.Is(f.Err, reviewmodel.ErrTooManyPhotos) {
			fmt.Fprintf(os.Stderr, "Only %d photos allowed, %s ignored.\n", reviewmodel.MaxPhotos, paths[f.Index])
			continue
		}
		if errors.Is(f.Err, storage.ErrUnreadableImage) {
			fmt.Fprintf(os.Stderr, "Photo %s could not be processed, skipping.\n", paths[f.Index])
			continue
		}
		fmt.Fprintf(os.Stderr, "Photo %s failed: %v\n", paths[f.Index], f.Err)
	}

	return photos, nil
}
