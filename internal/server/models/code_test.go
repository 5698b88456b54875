package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationCode_Expired(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c := &VerificationCode{Identifier: "a@b.com", Code: 123456, IssuedAt: issued}

	assert.False(t, c.Expired(issued, time.Hour))
	assert.False(t, c.Expired(issued.Add(59*time.Minute), time.Hour))
	assert.False(t, c.Expired(issued.Add(time.Hour), time.Hour), "boundary is inclusive")
	assert.True(t, c.Expired(issued.Add(61*time.Minute), time.Hour))
	assert.False(t, c.Expired(issued.Add(-time.Minute), time.Hour), "clock skew backwards is not expiry")
}
