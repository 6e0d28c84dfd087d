package audio

// Sound effect IDs for the demo's three samples.
const (
	SndStartup = 0
	SndShoot   = 1
	SndExplode = 2
	SndCount   = 3
)

// Audio constants. The device runs at 44100 Hz with 16-bit little-endian
// samples; the decoders upmix the demo's mono source files to the device's
// two-channel layout.
const (
	SampleRate     = 44100
	ChannelCount   = 2
	BytesPerSample = 2
)

// Sample is a decoded sound effect held in memory for the demo's lifetime.
type Sample struct {
	Name string // display name
	Path string // source file path
	PCM  []byte // device-ready PCM bytes
}
