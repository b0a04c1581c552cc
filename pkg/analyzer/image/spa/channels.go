package spa

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"lsbattack/pkg/logger"
	"lsbattack/pkg/models"
	"lsbattack/pkg/workerpool"
)

// ChannelError attributes an analysis failure to a colour channel
type ChannelError struct {
	Channel models.ColorChannel
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s channel: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// AnalyzeChannel runs SPA on one channel and applies the threshold
func AnalyzeChannel(ch models.ColorChannel, m models.PixelMatrix, threshold float64) (models.ChannelResult, error) {
	p, counts, err := Estimate(m)
	if err != nil {
		return models.ChannelResult{}, &ChannelError{Channel: ch, Err: err}
	}

	logger.WithFields(logrus.Fields{
		"channel": ch.String(),
		"x":       counts.X,
		"y":       counts.Y,
		"k":       counts.K,
		"pairs":   counts.Pairs,
		"p":       p,
	}).Debug("sample pairs analysis complete")

	return models.ChannelResult{
		Channel:       ch,
		ChangeRate:    p,
		EmbeddingRate: 2 * p,
		Suspicious:    p > threshold,
		Counts:        counts,
	}, nil
}

// AnalyzeChannels runs SPA on the red, green and blue planes concurrently.
// Results come back in channel order. If any channel fails, no results are returned and
// the error joins one ChannelError per failing channel.
func AnalyzeChannels(red, green, blue models.PixelMatrix, threshold float64, workers int) ([]models.ChannelResult, error) {
	planes := []models.PixelMatrix{red, green, blue}
	results := make([]models.ChannelResult, len(planes))
	errs := make([]error, len(planes))

	workerpool.Run(workers, len(planes), func(i int) {
		results[i], errs[i] = AnalyzeChannel(models.RGBChannels[i], planes[i], threshold)
	})

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
