package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(WithLower())
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Length())
	assert.Equal(t, []Alphabet{Latin}, cfg.Alphabets())
	assert.True(t, cfg.Lower())
	assert.False(t, cfg.Upper())
	assert.False(t, cfg.Numbers())
	assert.False(t, cfg.Special())
	assert.Empty(t, cfg.RequiredDigits())
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []OptsFn
		wantErr string
	}{
		{
			name: "zero_length",
			opts:    []OptsFn{WithLength(0), WithLower()},
			wantErr: "length must be >=",
		},
		{
			name:    "negative_length",
			opts:    []OptsFn{WithLength(-5), WithLower()},
			wantErr: "length must be >=",
		},
		{
			name:    "length_above_max",
			opts:    []OptsFn{WithLength(1_000_001), WithLower()},
			wantErr: "length must be <=",
		},
		{
			name:    "required_digits_without_numbers",
			opts:    []OptsFn{WithLower(), WithRequiredDigits("135")},
			wantErr: "numbers are disabled",
		},
		{
			name:    "required_digits_non_digit",
			opts:    []OptsFn{WithLower(), WithNumbers(), WithRequiredDigits("1a3")},
			wantErr: "only digits 0-9",
		},
		{
			name:    "no_character_sets",
			opts:    nil,
			wantErr: "no character sets selected",
		},
		{
			name:    "letters_without_case_flags",
			opts:    []OptsFn{WithAlphabets(Latin, Cyrillic)},
			wantErr: "no character sets selected",
		},
		{
			name:    "case_flags_without_alphabets",
			opts:    []OptsFn{WithAlphabets(), WithUpper(), WithLower()},
			wantErr: "no character sets selected",
		},
		{
			name:    "unknown_alphabet",
			opts:    []OptsFn{WithAlphabets(Alphabet(42)), WithLower()},
			wantErr: "unknown alphabet",
		},
		{
			name: "max_length_ok",
			opts: []OptsFn{WithLength(1_000_000), WithLower()},
		},
		{
			name: "min_length_ok",
			opts: []OptsFn{WithLength(1), WithLower()},
		},
		{
			name: "digits_only_ok",
			opts: []OptsFn{WithAlphabets(), WithNumbers()},
		},
		{
			name: "special_only_ok",
			opts: []OptsFn{WithAlphabets(), WithSpecial()},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.opts...)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestNewConfigDedupesAlphabets(t *testing.T) {
	cfg, err := NewConfig(WithAlphabets(Latin, Cyrillic, Latin, Cyrillic), WithLower())
	require.NoError(t, err)

	assert.Equal(t, []Alphabet{Latin, Cyrillic}, cfg.Alphabets())
}

func TestNewConfigTrimsRequiredDigits(t *testing.T) {
	cfg, err := NewConfig(WithLower(), WithNumbers(), WithRequiredDigits("  135  "))
	require.NoError(t, err)

	assert.Equal(t, "135", cfg.RequiredDigits())
}

func TestConfigAlphabetsReturnsCopy(t *testing.T) {
	cfg, err := NewConfig(WithAlphabets(Latin, Cyrillic), WithLower())
	require.NoError(t, err)

	got := cfg.Alphabets()
	got[0] = Cyrillic
	assert.Equal(t, []Alphabet{Latin, Cyrillic}, cfg.Alphabets())
}

func TestZeroValueConfigInvalid(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.Validate())
}
