package model

// Customer represents a registered viewer as stored in the `customer`
// table.  Rows are created by registration and never updated or
// deleted by the application.  The plaintext password is never
// stored; only its bcrypt hash.
//
// Fields:
//  CustID       – primary key, generated by the store (AUTO_INCREMENT).
//  Username     – unique login name, at least five characters.
//  PasswordHash – bcrypt hash of the password.
//  FirstName    – given name.
//  LastName     – family name.
//  Email        – contact address.
//  CreditCard   – billing card number, at least sixteen characters.
type Customer struct {
	CustID       uint64 // customer.cust_id
	Username     string // customer.username
	PasswordHash string // customer.password_hash
	FirstName    string // customer.fname
	LastName     string // customer.lname
	Email        string // customer.email
	CreditCard   string // customer.credit_card
}
