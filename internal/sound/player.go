// Package sound plays the reminder chime through the system audio device.
package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"restwatch/internal/core/model"
)

// Player plays a preloaded WAV clip. The audio context is created lazily
// on first playback and reused afterwards.
type Player struct {
	mu       sync.Mutex
	ctx      *oto.Context
	ctxErr   error
	ctxOnce  sync.Once
	format   wavFormat
	clipData []byte
}

type wavFormat struct {
	sampleRate int
	channels   int
	bitDepth   int
}

// NewPlayer parses the WAV clip and prepares a player for it.
func NewPlayer(wavData []byte) (*Player, error) {
	format, clipData, err := parseWAV(wavData)
	if err != nil {
		return nil, fmt.Errorf("parse chime wav: %w", err)
	}
	return &Player{format: format, clipData: clipData}, nil
}

// Play starts clip playback in the background. Disabled sound config is
// a no-op. Playback errors are logged, not returned, since a silent
// reminder is still a delivered reminder.
func (player *Player) Play(cfg model.SoundConfig) {
	if !cfg.Enabled || player == nil {
		return
	}

	ctx, err := player.context()
	if err != nil {
		log.Printf("audio unavailable: %v", err)
		return
	}

	volume := cfg.Volume
	if volume <= 0 || volume > 1 {
		volume = 1
	}

	go func() {
		clip := ctx.NewPlayer(bytes.NewReader(player.clipData))
		clip.SetVolume(volume)
		clip.Play()
		for clip.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := clip.Close(); err != nil {
			log.Printf("close audio player: %v", err)
		}
	}()
}

func (player *Player) context() (*oto.Context, error) {
	player.ctxOnce.Do(func() {
		options := &oto.NewContextOptions{
			SampleRate:   player.format.sampleRate,
			ChannelCount: player.format.channels,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(options)
		if err != nil {
			player.ctxErr = err
			return
		}
		<-ready
		player.ctx = ctx
	})
	return player.ctx, player.ctxErr
}

func parseWAV(data []byte) (wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	header := make([]byte, 12)
	if _, err := io.ReadFull(reader, header); err != nil {
		return wavFormat{}, nil, fmt.Errorf("read riff header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return wavFormat{}, nil, errors.New("not a wav file")
	}

	var format wavFormat
	for {
		chunkHeader := make([]byte, 8)
		if _, err := io.ReadFull(reader, chunkHeader); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return wavFormat{}, nil, errors.New("wav data chunk not found")
			}
			return wavFormat{}, nil, fmt.Errorf("read chunk header: %w", err)
		}

		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			chunk := make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, chunk); err != nil {
				return wavFormat{}, nil, fmt.Errorf("read fmt chunk: %w", err)
			}
			if len(chunk) < 16 {
				return wavFormat{}, nil, errors.New("fmt chunk too short")
			}
			format.channels = int(binary.LittleEndian.Uint16(chunk[2:4]))
			format.sampleRate = int(binary.LittleEndian.Uint32(chunk[4:8]))
			format.bitDepth = int(binary.LittleEndian.Uint16(chunk[14:16]))
		case "data":
			if format.sampleRate == 0 {
				return wavFormat{}, nil, errors.New("wav data chunk before fmt chunk")
			}
			clip := make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, clip); err != nil {
				return wavFormat{}, nil, fmt.Errorf("read data chunk: %w", err)
			}
			return format, clip, nil
		default:
			if _, err := reader.Seek(int64(chunkSize), io.SeekCurrent); err != nil {
				return wavFormat{}, nil, fmt.Errorf("skip %q chunk: %w", chunkID, err)
			}
		}
	}
}
