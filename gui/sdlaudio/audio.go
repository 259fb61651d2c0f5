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

// Package sdlaudio outputs sound using SDL. It implements the sound.Mixer
// interface.
package sdlaudio

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"nocturne/curated"
)

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	open bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
// The audio device is not opened until the first call to Queue(); sound
// assets do not share a single sample rate so the device is opened to match
// the data being queued.
func NewAudio() *Audio {
	return &Audio{}
}

func (aud *Audio) openDevice(rate float64) error {
	if aud.open {
		if int32(rate) == aud.spec.Freq {
			return nil
		}
		sdl.CloseAudioDevice(aud.id)
		aud.open = false
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec
	aud.open = true

	return nil
}

// Queue implements the sound.Mixer interface.
func (aud *Audio) Queue(sampleRate float64, data []float32) error {
	err := aud.openDevice(sampleRate)
	if err != nil {
		return err
	}

	// float32 samples as little-endian bytes
	b := make([]byte, 0, len(data)*4)
	for _, f := range data {
		v := math.Float32bits(f)
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}

	err = sdl.QueueAudio(aud.id, b)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return nil
}

// StopAll implements the sound.Mixer interface.
func (aud *Audio) StopAll() {
	if !aud.open {
		return
	}
	sdl.ClearQueuedAudio(aud.id)
	sdl.PauseAudioDevice(aud.id, true)
}

// Close the audio device.
func (aud *Audio) Close() {
	if aud.open {
		sdl.CloseAudioDevice(aud.id)
		aud.open = false
	}
}
