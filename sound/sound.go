// This file is part of Nocturne.
//
// Nocturne is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nocturne is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nocturne.  If not, see <https://www.gnu.org/licenses/>.

// Package sound decodes sound assets from the archive into PCM and streams
// them to a mixer. The platform mixer lives in gui/sdlaudio.
package sound

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"nocturne/curated"
	"nocturne/logger"
)

// Mixer is the capability interface sounds are played through.
type Mixer interface {
	// Queue PCM data for playback. Mono, one float32 per sample.
	Queue(sampleRate float64, data []float32) error

	// StopAll stops playback and discards anything queued.
	StopAll()
}

// PCM is decoded sound data.
type PCM struct {
	// in seconds
	TotalTime float64

	SampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	Data []float32
}

// Decode the sound asset behind the ReadSeeker. The decoder is chosen by
// the name's extension: ".mp3" assets are decoded as MP3, everything else
// as WAV (the engine's native sound container is WAV data).
func Decode(name string, r io.ReadSeeker) (PCM, error) {
	p := PCM{
		Data: make([]float32, 0),
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return p, curated.Errorf("sound: mp3: %v", err)
		}

		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, curated.Errorf("sound: mp3: %v", err)
			}

			// index increment of 4 because the go-mp3 stream is always 16bit
			// little-endian two channel data and we only want the left
			// channel
			for i := 2; i < chunkLen; i += 4 {
				f := int(chunk[i]) | (int(chunk[i+1]) << 8)

				// interpret as two's complement
				if f != 0 {
					f -= 32768
				}

				p.Data = append(p.Data, float32(f)/32768.0)
			}
		}

		p.SampleRate = float64(dec.SampleRate())
		p.TotalTime = float64(len(p.Data)) / p.SampleRate

	default:
		dec := wav.NewDecoder(r)
		if dec == nil {
			return p, curated.Errorf("sound: wav: error decoding")
		}

		if !dec.IsValidFile() {
			return p, curated.Errorf("sound: wav: not a valid wav file")
		}

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("sound: wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of the data stream
		p.Data = make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			p.Data = append(p.Data, floatBuf.Data[i])
		}

		p.SampleRate = float64(dec.SampleRate)

		dur, err := dec.Duration()
		if err != nil {
			return p, curated.Errorf("sound: wav: %v", err)
		}
		p.TotalTime = dur.Seconds()
	}

	logger.Logf(logger.Allow, "sound", "%s: %0.2fHz, %.02fs", name, p.SampleRate, p.TotalTime)

	return p, nil
}

// StreamedSound plays decoded sound assets through a mixer.
type StreamedSound struct {
	mix Mixer
}

// NewStreamedSound is the preferred method of initialisation for the
// StreamedSound type.
func NewStreamedSound(mix Mixer) *StreamedSound {
	return &StreamedSound{mix: mix}
}

// Play decodes the asset behind the ReadSeeker and queues it on the mixer.
func (snd *StreamedSound) Play(name string, r io.ReadSeeker) error {
	p, err := Decode(name, r)
	if err != nil {
		return err
	}
	return snd.mix.Queue(p.SampleRate, p.Data)
}
