package main

import "github.com/dherbrich/oandash/internal/passwd"

func main() {
	passwd.Execute()
}
