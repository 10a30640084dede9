package common

import (
	"github.com/logrusorgru/aurora"
)

func AlertColor(str string) string {
	return aurora.Red(str).String()
}

func InfoColor(str string) string {
	return aurora.Green(str).String()
}

func DimColor(str string) string {
	return aurora.Gray(12, str).String()
}

func NameWithColor(name string) string {
	if name == "" {
		return AlertColor("unknown")
	}
	return InfoColor(name)
}
