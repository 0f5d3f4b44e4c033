package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{
			name:  "language only",
			input: "de",
			want:  "de",
		},
		{
			name:  "language and region",
			input: "de-DE",
			want:  "de-DE",
		},
		{
			name:  "lowercase region",
			input: "de-de",
			want:  "de-DE",
		},
		{
			name:  "uppercase language",
			input: "DE",
			want:  "de",
		},
		{
			name:  "script and region",
			input: "zh-hant-tw",
			want:  "zh-Hant-TW",
		},
		{
			name:  "script only",
			input: "zh-Hans",
			want:  "zh-Hans",
		},
		{
			name:  "three letter language",
			input: "fil",
			want:  "fil",
		},
		{
			name:  "empty is neutral",
			input: "",
			want:  Neutral,
		},
		{
			name:  "neutral keyword",
			input: "neutral",
			want:  Neutral,
		},
		{
			name:  "neutral keyword uppercase",
			input: "NEUTRAL",
			want:  Neutral,
		},
		// Error cases
		{
			name:    "invalid - single letter",
			input:   "d",
			wantErr: true,
		},
		{
			name:    "invalid - four letter language",
			input:   "daaa",
			wantErr: true,
		},
		{
			name:    "invalid - digits",
			input:   "d3",
			wantErr: true,
		},
		{
			name:    "invalid - trailing dash",
			input:   "de-",
			wantErr: true,
		},
		{
			name:    "invalid - three part region",
			input:   "de-DEU",
			wantErr: true,
		},
		{
			name:    "invalid - underscore separator",
			input:   "de_DE",
			wantErr: true,
		},
		{
			name:    "invalid - file name",
			input:   "Strings.de",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "neutral", Neutral.String())
	assert.Equal(t, "de-DE", Key("de-DE").String())
}

func TestKeyIsNeutral(t *testing.T) {
	assert.True(t, Neutral.IsNeutral())
	assert.True(t, Key("").IsNeutral())
	assert.False(t, Key("en").IsNeutral())
}

func TestKeyLanguage(t *testing.T) {
	assert.Equal(t, "de", Key("de").Language())
	assert.Equal(t, "de", Key("de-AT").Language())
	assert.Equal(t, "zh", Key("zh-Hant-TW").Language())
	assert.Equal(t, "", Neutral.Language())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a culture") })
	assert.NotPanics(t, func() { MustParse("en-GB") })
}
