package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"thumbd/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// Magick resizes by piping the source through an ImageMagick binary.
type Magick struct {
	magickBinary []string
}

// NewMagick probes for ImageMagick 7 ("magick") and falls back to the legacy "convert" binary.
func NewMagick() (*Magick, error) {
	m := &Magick{}
	commands := [][]string{{"magick", "-version"}, {"convert", "-version"}}

	for _, command := range commands {
		_, err := exec.Command(command[0], command[1:]...).Output()
		if err != nil {
			log.Debug().Strs("commands", command).Msg("binary not found")
			continue
		}

		log.Debug().Strs("commands", command).Msg("binary found")
		m.magickBinary = command[:len(command)-1]
		break
	}

	if len(m.magickBinary) == 0 {
		return nil, errors.New("magick binary not available")
	}

	return m, nil
}

func (m *Magick) DecodeAndResize(ctx context.Context, source []byte, width, height int) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.magickBinary[0], m.args(width, height)...)
	cmd.Stdin = bytes.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Ctx(ctx).Error().Str("magickStderr", stderr.String()).Msg("magick command failed")
		return nil, fmt.Errorf("magick failed: %w", err)
	}

	if stdout.Len() == 0 {
		return nil, errors.New("magick produced no output")
	}

	log.Ctx(ctx).Debug().Int("bytes", stdout.Len()).Msg("magick command finished")

	return stdout.Bytes(), nil
}

// args builds the command line after the binary: read stdin, force the exact geometry, write JPEG to stdout.
func (m *Magick) args(width, height int) []string {
	geometry := fmt.Sprintf("%dx%d!", width, height)

	args := append([]string{}, m.magickBinary[1:]...)
	return append(args,
		"-",
		"-auto-orient",
		"-resize", geometry,
		"-quality", strconv.Itoa(domain.JPEGQuality),
		"jpg:-",
	)
}
