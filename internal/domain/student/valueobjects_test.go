package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_IsValid(t *testing.T) {
	valid := []string{"John Doe", "john", "a", "Capital Tan 2nd", "12345"}
	for _, s := range valid {
		assert.True(t, Name(s).IsValid(), "expected valid name: %q", s)
	}

	invalid := []string{"", " ", "^", "peter*", " John", "John-Doe"}
	for _, s := range invalid {
		assert.False(t, Name(s).IsValid(), "expected invalid name: %q", s)
	}
}

func TestNewName_TrimsWhitespace(t *testing.T) {
	name, err := NewName("  John Doe  ")
	assert.NoError(t, err)
	assert.Equal(t, Name("John Doe"), name)
}

func TestPhone_IsValid(t *testing.T) {
	valid := []string{"911", "93121534", "124293842033123"}
	for _, s := range valid {
		assert.True(t, Phone(s).IsValid(), "expected valid phone: %q", s)
	}

	invalid := []string{"", " ", "91", "phone", "9011p041", "9312 1534"}
	for _, s := range invalid {
		assert.False(t, Phone(s).IsValid(), "expected invalid phone: %q", s)
	}
}

func TestEmail_IsValid(t *testing.T) {
	valid := []string{
		"PeterJack_1190@example.com",
		"a@bc",
		"test@localhost-1",
		"a1+be.d@example1.com",
		"peter_jack@very-very-very-long-example.com",
	}
	for _, s := range valid {
		assert.True(t, Email(s).IsValid(), "expected valid email: %q", s)
	}

	invalid := []string{
		"",
		"@example.com",
		"peterjack@",
		"peterjack@-",
		"peter jack@example.com",
		"peterjack@exam ple.com",
		"peterjack@example.c-",
		".peterjack@example.com",
		"peterjack.@example.com",
		"peter..jack@example.com",
		"peterjack@example.com.",
		"peterjack@example.c",
	}
	for _, s := range invalid {
		assert.False(t, Email(s).IsValid(), "expected invalid email: %q", s)
	}
}

func TestAddress_IsValid(t *testing.T) {
	assert.True(t, Address("Blk 456, Den Road, #01-355").IsValid())
	assert.True(t, Address("-").IsValid())
	assert.False(t, Address("").IsValid())
	assert.False(t, Address(" ").IsValid())
}

func TestFee_Validation(t *testing.T) {
	assert.True(t, IsValidFee("0"))
	assert.True(t, IsValidFee("150"))
	assert.False(t, IsValidFee("-1"))
	assert.False(t, IsValidFee("+1"))
	assert.False(t, IsValidFee("1.5"))
	assert.False(t, IsValidFee("abc"))
	assert.False(t, IsValidFee(""))
	assert.False(t, IsValidFee(" 150"), "fees are checked without trimming")

	fee, err := NewFee("150")
	assert.NoError(t, err)
	assert.Equal(t, 150, fee.Int())

	_, err = NewFee("-1")
	assert.EqualError(t, err, "student.NewFee: "+FeeConstraints)
}

func TestTag_IsValid(t *testing.T) {
	assert.True(t, Tag("beginner").IsValid())
	assert.True(t, Tag("y2026").IsValid())
	assert.False(t, Tag("").IsValid())
	assert.False(t, Tag("owes fees").IsValid())
	assert.False(t, Tag("a*b").IsValid())
}
