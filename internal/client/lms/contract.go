package lms

type TokenGenerator interface {
	GenerateServiceToken(username string) (string, int64, error)
}
