package service

// CodeGenerator produces numeric one-time codes.
type CodeGenerator interface {
	NumericCode(length int) (string, error)
}
