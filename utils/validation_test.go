package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"0912345678",
		"+886912345678",
		"0912-345-678",
		"(02) 2712 3456",
		"1234567",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"123456",
		"0912345678901234",
		"09123abc78",
		"++886912345678",
		"0912 3456 78x",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
