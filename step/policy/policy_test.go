package policy_test

import (
	"encoding/json"
	"testing"

	"github.com/scriptdiff/scriptdiff/step/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  policy.Policy
	}{
		{name: "unlabeled", label: "", want: policy.ValueOnly},
		{name: "with dialog", label: "Mit Dialog", want: policy.LabeledToggle},
		{name: "pause", label: "Pause", want: policy.LabeledToggle},
		{name: "force commit", label: "Schreiben erzwingen", want: policy.FlagIfTrue},
		{name: "skip validation", label: "Dateneingabeüberprüfung unterdrücken", want: policy.FlagIfTrue},
		{name: "unlisted label", label: "Ohne Dialog ausführen", want: policy.LabeledToggle},
		{name: "labels are case sensitive", label: "mit dialog", want: policy.LabeledToggle},
	}

	table := policy.Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.For(tc.label))
		})
	}
}

func TestLookup(t *testing.T) {
	p, ok := policy.Default().Lookup("Schreiben erzwingen")
	assert.True(t, ok)
	assert.Equal(t, policy.FlagIfTrue, p)

	_, ok = policy.Default().Lookup("Nicht vorhanden")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	t.Run("UnknownPolicy", func(t *testing.T) {
		_, err := policy.Load([]byte("sometimes:\n  - Pause\n"))
		assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
	})
	t.Run("DuplicateLabel", func(t *testing.T) {
		_, err := policy.Load([]byte("flag_if_true: [Pause]\nlabeled_toggle: [Pause]\n"))
		assert.ErrorContains(t, err, "listed as both")
	})
	t.Run("ValueOnlyLabel", func(t *testing.T) {
		table, err := policy.Load([]byte("value_only: [Pause]\n"))
		require.NoError(t, err)
		assert.Equal(t, policy.ValueOnly, table.For("Pause"))
	})
}

func TestWith(t *testing.T) {
	base := policy.Default()
	table := base.With(map[string]policy.Policy{"Pause": policy.FlagIfTrue})

	assert.Equal(t, policy.FlagIfTrue, table.For("Pause"))
	assert.Equal(t, policy.LabeledToggle, base.For("Pause"))
}

func TestLabels(t *testing.T) {
	table := policy.Default()
	assert.Equal(t, []string{"Dateneingabeüberprüfung unterdrücken", "Mit Dialog", "Pause", "Schreiben erzwingen"}, table.Labels())
	assert.Equal(t, []string{"Mit Dialog", "Pause"}, table.LabelsFor(policy.LabeledToggle))
	assert.Nil(t, table.LabelsFor(policy.ValueOnly))
}

func TestUnmarshalText(t *testing.T) {
	var overrides map[string]policy.Policy
	require.NoError(t, json.Unmarshal([]byte(`{"Pause":"flag_if_true"}`), &overrides))
	assert.Equal(t, policy.FlagIfTrue, overrides["Pause"])

	err := json.Unmarshal([]byte(`{"Pause":"always"}`), &overrides)
	assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
}
