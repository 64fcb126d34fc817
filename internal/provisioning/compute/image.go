package compute

import (
	"errors"
	"fmt"
	"time"

	"github.com/imamik/oneliner/internal/platform/aws"
)

// ErrNoImages is returned when image discovery finds no candidates.
var ErrNoImages = errors.New("no images match")

// SelectLatestImage returns the image with the newest CreationDate.
// On equal dates the earlier candidate wins, so provider order breaks ties.
func SelectLatestImage(images []aws.Image) (aws.Image, error) {
	if len(images) == 0 {
		return aws.Image{}, ErrNoImages
	}

	var best aws.Image
	var bestTime time.Time
	for i, img := range images {
		created, err := time.Parse(time.RFC3339, img.CreationDate)
		if err != nil {
			return aws.Image{}, fmt.Errorf("image %s has unparsable creation date %q: %w", img.ID, img.CreationDate, err)
		}
		if i == 0 || created.After(bestTime) {
			best, bestTime = img, created
		}
	}
	return best, nil
}
