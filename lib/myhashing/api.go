package myhashing

//go:generate mockgen -source=api.go -package myhashing -destination hasher_mock.go Hasher
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, hash string) bool
}
