// Package iocli ввод и вывод команд клиента.
package iocli

// IO консоль команды: вывод текста, чтение строк и паролей
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
