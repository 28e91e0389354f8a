package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, Camps, Classify("any upcoming camps this summer?"))
	assert.Equal(t, Events, Classify("what events are happening"))
	assert.Equal(t, Clubs, Classify("tell me about the robotics club"))
	assert.Equal(t, Programs, Classify("does the CREATE program run here"))
	assert.Equal(t, Facility, Classify("what is the address"))
	assert.Equal(t, General, Classify("how is my kid doing"))
}

func TestClassifyPriority(t *testing.T) {
	// Camp keywords outrank everything else in mixed queries.
	assert.Equal(t, Camps, Classify("camp events and programs"))
	assert.Equal(t, Events, Classify("club events this week"))
}
