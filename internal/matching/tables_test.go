package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelatedField_KeepsAsymmetricAdjacency(t *testing.T) {
	tests := []struct {
		scholarship, profile string
		want                 bool
	}{
		{"Science", "Medicine", true},
		{"Engineering", "Medicine", false},
		{"Engineering", "Technology", true},
		{"engineering ", "SCIENCE", true},
		{"Agriculture", "Science", true},
		{"Science", "Agriculture", false},
		{"Unknown", "Science", false},
	}
	for _, tt := range tests {
		t.Run(tt.scholarship+"/"+tt.profile, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRelatedField(tt.scholarship, tt.profile))
		})
	}
}

func TestInRegion(t *testing.T) {
	assert.True(t, InRegion(RegionArab, "jo"))
	assert.True(t, InRegion(RegionMENA, " TR "))
	assert.False(t, InRegion(RegionArab, "TR"))
	assert.True(t, InRegion(RegionAfrica, "KE"))
	assert.False(t, InRegion("europe", "DE"))
}
