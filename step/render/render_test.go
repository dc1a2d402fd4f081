package render_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/scriptdiff/scriptdiff/step/kind"
	"github.com/scriptdiff/scriptdiff/step/policy"
	"github.com/scriptdiff/scriptdiff/step/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commitStep = `
<Step id="75" name="Schreibe Änderung Datens./Abfrage" enable="True">
	<Options>384</Options>
	<ParameterValues membercount="3">
		<Parameter type="Boolean">
			<Boolean type="Dateneingabeüberprüfung unterdrücken" id="256" value="%s"></Boolean>
		</Parameter>
		<Parameter type="Boolean">
			<Boolean type="Mit Dialog" id="128" value="%s"></Boolean>
		</Parameter>
		<Parameter type="Boolean">
			<Boolean type="Schreiben erzwingen" id="512" value="%s"></Boolean>
		</Parameter>
	</ParameterValues>
</Step>`

func commit(skipValidation, withDialog, force string) string {
	return fmt.Sprintf(commitStep, skipValidation, withDialog, force)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		id       uint32
		xml      string
		expected string
	}{
		{
			name:     "step without parameters",
			id:       79,
			xml:      `<Step id="79" name="Fenster fixieren" enable="True">`,
			expected: "Fenster fixieren",
		},
		{
			name:     "closed step without parameters",
			id:       79,
			xml:      `<Step id="79" name="Fenster fixieren" enable="True"></Step>`,
			expected: "Fenster fixieren",
		},
		{
			name: "unlabeled boolean on",
			id:   86,
			xml: `
<Step id="86" name="Fehleraufzeichnung setzen" enable="True">
	<Options>196608</Options>
	<ParameterValues membercount="1">
		<Parameter type="Boolean">
			<Boolean id="131072" value="True"></Boolean>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "Fehleraufzeichnung setzen [ ON ]",
		},
		{
			name: "unlabeled boolean off",
			id:   86,
			xml: `
<Step id="86" name="Fehleraufzeichnung setzen" enable="True">
	<Options>196608</Options>
	<ParameterValues membercount="1">
		<Parameter type="Boolean">
			<Boolean id="131072" value="False"></Boolean>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "Fehleraufzeichnung setzen [ OFF ]",
		},
		{
			name: "enter find mode",
			id:   22,
			xml: `
<Step id="22" name="Suchenmodus aktivieren" enable="True">
	<SourceUUID>3C5EBF9C-BAE0-460F-92AF-3FB73649951B</SourceUUID>
	<ParameterValues membercount="1">
		<Parameter type="Boolean">
			<Boolean type="Pause" id="16777216" value="False"></Boolean>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "Suchenmodus aktivieren [ Pause: OFF ]",
		},
		{
			name: "truncate table with broken reference",
			id:   182,
			xml: `
<Step index="509" id="182" name="Tabelle leeren" enable="True">
	<UUID>25ED2DB6-D1D0-402A-8B5A-6A06505C0A2A</UUID>
	<OwnerID></OwnerID>
	<Options>138</Options>
	<ParameterValues membercount="2">
		<Parameter type="Boolean">
			<Boolean type="Mit Dialog" id="128" value="False"></Boolean>
		</Parameter>
		<Parameter type="List">
			<List name="&lt;Tabelle nicht vorhanden&gt;" value="1"></List>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "Tabelle leeren [ Mit Dialog: OFF ; <Tabelle nicht vorhanden> ]",
		},
		{
			name:     "commit with flags unset",
			id:       75,
			xml:      commit("False", "False", "False"),
			expected: "Schreibe Änderung Datens./Abfrage [ Mit Dialog: OFF ]",
		},
		{
			name:     "commit with force",
			id:       75,
			xml:      commit("False", "False", "True"),
			expected: "Schreibe Änderung Datens./Abfrage [ Mit Dialog: OFF ; Schreiben erzwingen ]",
		},
		{
			name:     "commit skipping validation",
			id:       75,
			xml:      commit("True", "False", "False"),
			expected: "Schreibe Änderung Datens./Abfrage [ Dateneingabeüberprüfung unterdrücken ; Mit Dialog: OFF ]",
		},
		{
			name:     "commit with all options",
			id:       75,
			xml:      commit("True", "True", "True"),
			expected: "Schreibe Änderung Datens./Abfrage [ Dateneingabeüberprüfung unterdrücken ; Mit Dialog: ON ; Schreiben erzwingen ]",
		},
		{
			name: "only parameter is an unset flag",
			id:   75,
			xml: `
<Step id="75" name="Schreibe Änderung Datens./Abfrage" enable="True">
	<ParameterValues membercount="1">
		<Parameter type="Boolean">
			<Boolean type="Schreiben erzwingen" id="512" value="False"></Boolean>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "Schreibe Änderung Datens./Abfrage",
		},
		{
			name: "fragments keep document order across blocks",
			id:   182,
			xml: `
<Step id="182" name="Tabelle leeren">
	<ParameterValues membercount="1">
		<Parameter type="List"><List name="Zweite" value="2"></List></Parameter>
	</ParameterValues>
	<Options>1</Options>
	<ParameterValues membercount="2">
		<Parameter type="Boolean"><Boolean type="Mit Dialog" value="True"></Boolean></Parameter>
		<Parameter type="List"><List name="Erste" value="1"></List></Parameter>
	</ParameterValues>
</Step>`,
			expected: "Tabelle leeren [ Zweite ; Mit Dialog: ON ; Erste ]",
		},
		{
			name: "bad parameters do not stop their siblings",
			id:   182,
			xml: `
<Step id="182" name="Tabelle leeren">
	<ParameterValues membercount="4">
		<Parameter type="Calculation"><Calculation datatype="1"><Text>Get ( AccountName )</Text></Calculation></Parameter>
		<Parameter type="Boolean"><Boolean type="Mit Dialog" value="maybe"></Boolean></Parameter>
		<Parameter type="List"></Parameter>
		<Parameter type="List"><List name="Kunden" value="3"></List></Parameter>
	</ParameterValues>
</Step>`,
			expected: "Tabelle leeren [ Kunden ]",
		},
		{
			name: "parameters outside a parameter block are ignored",
			id:   86,
			xml: `
<Step id="86" name="Fehleraufzeichnung setzen">
	<Parameter type="Boolean"><Boolean value="True"></Boolean></Parameter>
</Step>`,
			expected: "Fehleraufzeichnung setzen",
		},
		{
			name: "comment",
			id:   89,
			xml: `
<Step id="89" name="# (Kommentar)" enable="True">
	<ParameterValues membercount="1">
		<Parameter type="Comment">
			<Comment value="Datensätze festschreiben"></Comment>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "# Datensätze festschreiben",
		},
		{
			name: "empty comment",
			id:   89,
			xml: `
<Step id="89" name="# (Kommentar)" enable="True">
	<ParameterValues membercount="1">
		<Parameter type="Comment">
			<Comment value=""></Comment>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "",
		},
		{
			name:     "comment without parameters",
			id:       89,
			xml:      `<Step id="89" name="# (Kommentar)" enable="True"></Step>`,
			expected: "",
		},
		{
			name:     "comment without name",
			id:       89,
			xml:      `<Step id="89"></Step>`,
			expected: "",
		},
		{
			name: "multi-line comment stays on one line",
			id:   89,
			xml: `
<Step id="89" name="# (Kommentar)" enable="True">
	<ParameterValues membercount="1">
		<Parameter type="Comment">
			<Comment value="Zeile 1&#13;Zeile 2&#13;&#10;Zeile 3"></Comment>
		</Parameter>
	</ParameterValues>
</Step>`,
			expected: "# Zeile 1 Zeile 2 Zeile 3",
		},
		{
			name: "line breaks in list names are folded",
			id:   182,
			xml: `
<Step id="182" name="Tabelle leeren">
	<ParameterValues membercount="1">
		<Parameter type="List"><List name="Kunden&#13;Archiv" value="3"></List></Parameter>
	</ParameterValues>
</Step>`,
			expected: "Tabelle leeren [ Kunden Archiv ]",
		},
		{
			name:     "unterminated step followed by whitespace",
			id:       79,
			xml:      "<Step id=\"79\" name=\"Fenster fixieren\" enable=\"True\">\n\t",
			expected: "Fenster fixieren",
		},
		{
			name:     "xml declaration",
			id:       79,
			xml:      `<?xml version="1.0" encoding="UTF-8"?><Step id="79" name="Fenster fixieren"/>`,
			expected: "Fenster fixieren",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := render.Render(tc.id, strings.TrimSpace(tc.xml))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRenderMalformed(t *testing.T) {
	tests := []struct {
		name string
		id   uint32
		xml  string
	}{
		{name: "empty input", id: 79, xml: ""},
		{name: "whitespace only", id: 79, xml: "  \n "},
		{name: "wrong root element", id: 79, xml: `<Script name="Start"></Script>`},
		{name: "mismatched end tag", id: 79, xml: `<Step name="Fenster fixieren"><Options></Step>`},
		{name: "invalid attribute", id: 79, xml: `<Step name=Fenster></Step>`},
		{name: "generic step without name", id: 79, xml: `<Step id="79" enable="True"></Step>`},
		{name: "input cut off inside an attribute", id: 75, xml: `<Step id="75" name="Schreibe"><ParameterValues><Parameter type="Boolean"><Boolean type="Mit Dialog" value="Tr`},
		{name: "input cut off inside a tag name", id: 75, xml: `<Step id="75" name="Schreibe"><ParameterValues><Param`},
		{name: "input cut off inside the step tag", id: 79, xml: `<Step id="79" name="Fenster`},
		{name: "comment step with broken xml", id: 89, xml: `<Step id="89"><ParameterValues></Parameter></Step>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := render.Render(tc.id, tc.xml)
			assert.ErrorIs(t, err, render.ErrMalformedInput)
			assert.Empty(t, got)
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := render.New(nil, nil, nil)
	xml := commit("True", "False", "True")

	first, err := r.Render(75, xml)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := r.Render(75, xml)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestRenderWithCustomTables(t *testing.T) {
	kinds := kind.Default().With(map[uint32]kind.Kind{75: kind.Comment})
	policies := policy.Default().With(map[string]policy.Policy{"Mit Dialog": policy.FlagIfTrue})
	r := render.New(kinds, policies, nil)

	got, err := r.Render(75, commit("False", "True", "True"))
	require.NoError(t, err)
	assert.Equal(t, "# Mit Dialog ; Schreiben erzwingen", got)
}
