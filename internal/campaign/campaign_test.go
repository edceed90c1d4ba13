package campaign

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port402/socialpay-cli/internal/pay"
)

func validDescriptor() Descriptor {
	return Descriptor{
		Platform:     pay.PlatformX,
		Name:         "Launch week cookies",
		Description:  "Cookies for early supporters of the launch",
		TotalCookies: 5,
		Sponsor: Sponsor{
			Name:   "Acme",
			Handle: "acme",
			URL:    "https://acme.example.com",
		},
	}
}

func TestValidate_Success(t *testing.T) {
	raw := validDescriptor()
	got, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, *got)
}

func TestValidate_OptionalURLMayBeEmpty(t *testing.T) {
	raw := validDescriptor()
	raw.Sponsor.URL = ""
	_, err := Validate(raw)
	require.NoError(t, err)
}

func TestValidate_AggregatesViolations(t *testing.T) {
	raw := validDescriptor()
	raw.Name = "ab"       // below 3
	raw.TotalCookies = 2  // below 3

	_, err := Validate(raw)
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.GreaterOrEqual(t, len(validation.Violations), 2)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "totalCookies")
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"platform github not allowed", func(d *Descriptor) { d.Platform = pay.PlatformGitHub }},
		{"name too long", func(d *Descriptor) { d.Name = strings.Repeat("n", 101) }},
		{"description too short", func(d *Descriptor) { d.Description = "too short" }},
		{"description too long", func(d *Descriptor) { d.Description = strings.Repeat("d", 501) }},
		{"cookies above max", func(d *Descriptor) { d.TotalCookies = 11 }},
		{"sponsor name empty", func(d *Descriptor) { d.Sponsor.Name = "" }},
		{"sponsor handle empty", func(d *Descriptor) { d.Sponsor.Handle = "" }},
		{"sponsor handle too long", func(d *Descriptor) { d.Sponsor.Handle = strings.Repeat("h", 51) }},
		{"sponsor url relative", func(d *Descriptor) { d.Sponsor.URL = "/not/absolute" }},
		{"sponsor url garbage", func(d *Descriptor) { d.Sponsor.URL = "ht tp://bad" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validDescriptor()
			tt.mutate(&raw)

			_, err := Validate(raw)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestValidate_InclusiveBounds(t *testing.T) {
	raw := validDescriptor()
	raw.TotalCookies = MinCookies
	_, err := Validate(raw)
	require.NoError(t, err)

	raw.TotalCookies = MaxCookies
	_, err = Validate(raw)
	require.NoError(t, err)

	raw.Name = strings.Repeat("n", NameMaxLen)
	raw.Description = strings.Repeat("d", DescriptionMaxLen)
	_, err = Validate(raw)
	require.NoError(t, err)
}

func TestCost(t *testing.T) {
	descriptor := validDescriptor()
	descriptor.TotalCookies = 7

	cost := Cost(&descriptor, StaticPricing{})
	assert.Equal(t, "0.7", cost.String())
}
