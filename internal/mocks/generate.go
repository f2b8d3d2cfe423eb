package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Gateway --dir ../handlers --output . --outpkg mocks --filename gateway.go
