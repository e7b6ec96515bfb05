package detect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/faceset/faceset/internal/crop"
)

// HTTPDetector sends frames to an external detection service and decodes
// the normalized areas it reports.
type HTTPDetector struct {
	url      string
	client   *http.Client
	minScore int
}

type httpFace struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	W     float32 `json:"w"`
	H     float32 `json:"h"`
	Score float32 `json:"score"`
}

// NewHTTPDetector returns a detector backed by the service at url.
func NewHTTPDetector(url string) *HTTPDetector {
	return &HTTPDetector{
		url:      url,
		client:   &http.Client{Timeout: 10 * time.Second},
		minScore: MinScore,
	}
}

// Detect posts the image to the detection service.
func (d *HTTPDetector) Detect(img image.Image) (areas crop.Areas, err error) {
	var buf bytes.Buffer

	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return areas, fmt.Errorf("detect: %s (encode frame)", err)
	}

	resp, err := d.client.Post(d.url, "image/jpeg", &buf)

	if err != nil {
		return areas, fmt.Errorf("detect: %s", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return areas, fmt.Errorf("detect: service returned status %d", resp.StatusCode)
	}

	var faces []httpFace

	if err := json.NewDecoder(resp.Body).Decode(&faces); err != nil {
		return areas, fmt.Errorf("detect: %s (decode response)", err)
	}

	for i := range faces {
		if int(faces[i].Score*100) < d.minScore {
			log.Debugf("detect: skipped face with score %.2f", faces[i].Score)
			continue
		}

		areas = append(areas, crop.NewArea("face", faces[i].X, faces[i].Y, faces[i].W, faces[i].H))
	}

	return areas, nil
}
