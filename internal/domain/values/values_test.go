package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewItemID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "sword-01", "sword-01", false},
		{"trims whitespace", "  shield  ", "shield", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewItemID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
			assert.False(t, id.IsEmpty())
		})
	}
}

func Test_ItemID_Equals(t *testing.T) {
	a := MustNewItemID("potion")
	b := MustNewItemID("potion")
	c := MustNewItemID("scroll")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func Test_TransactionID_RoundTrip(t *testing.T) {
	id := NewTransactionID()
	assert.False(t, id.IsZero())

	parsed, err := ParseTransactionID(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))
}

func Test_TransactionID_ParseInvalid(t *testing.T) {
	_, err := ParseTransactionID("not-a-uuid")
	assert.Error(t, err)
}

func Test_TransactionID_Unique(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()
	assert.False(t, a.Equals(b))
}
