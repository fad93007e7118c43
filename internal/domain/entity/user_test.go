package entity

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+79161234567",
		"+441234567890",
		"  +79161234567  ",
	}
	for _, phone := range valid {
		if err := ValidatePhone(phone); err != nil {
			t.Errorf("expected %q to be valid, got %v", phone, err)
		}
	}

	invalid := []string{
		"",
		"79161234567",
		"+7916123456",    // too short
		"+791612345678",  // too long
		"+19161234567",   // unregistered country
		"+7916123456a",   // non-digit
		"+7 916 1234567", // spaces inside
	}
	for _, phone := range invalid {
		if err := ValidatePhone(phone); err == nil {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestUser_DisplayName(t *testing.T) {
	t.Run("full name", func(t *testing.T) {
		user := NewUser("+79161234567", "Ivan", "Petrov", "hash")
		if got := user.DisplayName(); got != "Petrov Ivan" {
			t.Errorf("expected %q, got %q", "Petrov Ivan", got)
		}
	})

	t.Run("falls back to phone", func(t *testing.T) {
		user := NewUser("+79161234567", "", "", "hash")
		if got := user.DisplayName(); got != "+79161234567" {
			t.Errorf("expected phone fallback, got %q", got)
		}
	})
}
