package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The json tags are omitted here because these structs are used
// internally by the repository layer; handlers define separate response
// types that never include the password hash.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique email address, stored lowercased.
//  PasswordHash – bcrypt hashed password; the plaintext is never stored.
//  CreatedAt    – timestamp of creation, set once by the database.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
}
