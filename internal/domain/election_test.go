package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func district(number string, subjects ...Subject) District {
	return District{Number: number, Name: "district " + number, Subjects: subjects}
}

func subject(number string, votes int, percent float64) Subject {
	return Subject{Number: number, Votes: votes, Percent: percent}
}

func TestValidateDistricts(t *testing.T) {
	t.Run("identical subject sets pass", func(t *testing.T) {
		districts := []District{
			district("1", subject("41", 100, 50), subject("5", 90, 45)),
			district("2", subject("5", 10, 5), subject("41", 20, 10)),
		}

		assert.NoError(t, ValidateDistricts("capital", districts))
	})

	t.Run("subject order does not matter", func(t *testing.T) {
		districts := []District{
			district("1", subject("10", 1, 1), subject("2", 1, 1)),
			district("2", subject("2", 1, 1), subject("10", 1, 1)),
		}

		assert.NoError(t, ValidateDistricts("other", districts))
	})

	t.Run("differing subject sets fail", func(t *testing.T) {
		districts := []District{
			district("1", subject("41", 100, 50), subject("5", 90, 45)),
			district("2", subject("41", 20, 10), subject("9", 5, 2)),
		}

		err := ValidateDistricts("capital", districts)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "capital", verr.Scope)
		assert.Contains(t, err.Error(), "district 2")
	})

	t.Run("missing subject fails", func(t *testing.T) {
		districts := []District{
			district("1", subject("41", 100, 50), subject("5", 90, 45)),
			district("2", subject("41", 20, 10)),
		}

		assert.Error(t, ValidateDistricts("capital", districts))
	})

	t.Run("empty district list fails", func(t *testing.T) {
		err := ValidateDistricts("abroad", nil)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "abroad", verr.Scope)
	})

	t.Run("single district passes", func(t *testing.T) {
		districts := []District{district("0", subject("41", 5, 100))}
		assert.NoError(t, ValidateDistricts("abroad", districts))
	})
}

func TestSubjectNumbers(t *testing.T) {
	d := district("1",
		subject("10", 0, 0),
		subject("2", 0, 0),
		subject("41", 0, 0),
		subject("05", 0, 0),
	)

	assert.Equal(t, []string{"2", "05", "10", "41"}, d.SubjectNumbers(),
		"numbers must sort numerically, not lexically")
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bilingual keeps first segment", "ქართული ოცნება|Georgian Dream", "ქართული ოცნება"},
		{"plain name unchanged", "ერთიანი ნაციონალური მოძრაობა", "ერთიანი ნაციონალური მოძრაობა"},
		{"empty string", "", ""},
		{"leading pipe yields empty", "|English Only", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LocalName(tc.in))
		})
	}
}

func TestPartyNames(t *testing.T) {
	t.Run("harvests local segments", func(t *testing.T) {
		districts := []District{
			{Number: "0", Subjects: []Subject{
				{Number: "41", Name: "ქართული ოცნება|Georgian Dream"},
				{Number: "5", Name: "ერთობა"},
			}},
		}

		names := PartyNames(districts)
		assert.Equal(t, "ქართული ოცნება", names["41"])
		assert.Equal(t, "ერთობა", names["5"])
	})

	t.Run("first non-empty name wins", func(t *testing.T) {
		districts := []District{
			{Number: "0", Subjects: []Subject{{Number: "41", Name: ""}}},
			{Number: "1", Subjects: []Subject{{Number: "41", Name: "A|B"}}},
			{Number: "2", Subjects: []Subject{{Number: "41", Name: "C|D"}}},
		}

		names := PartyNames(districts)
		assert.Equal(t, "A", names["41"])
	})

	t.Run("nameless subjects omitted", func(t *testing.T) {
		districts := []District{
			{Number: "1", Subjects: []Subject{{Number: "41"}}},
		}

		names := PartyNames(districts)
		_, ok := names["41"]
		assert.False(t, ok)
	})
}
