package models

// Account is a registered user identity. Accounts are immutable after
// registration; there is no update or delete path.
//
// Passwords are stored and compared in plain text. This mirrors the
// deployed behavior and is a known weakness, kept deliberately rather
// than hashed behind the API's back.
type Account struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}
