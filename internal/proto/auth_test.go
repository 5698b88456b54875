package proto

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceDesc_MatchesProtoFile(t *testing.T) {
	src, err := os.ReadFile(AuthServiceDesc.Metadata.(string))
	require.NoError(t, err)

	assert.Contains(t, string(src), "package gophauth;")
	assert.Contains(t, string(src), "service AuthService {")
	assert.Equal(t, "gophauth.AuthService", ServiceName)

	rpc := regexp.MustCompile(`rpc (\w+)\(google\.protobuf\.Struct\) returns \(google\.protobuf\.Empty\);`)
	var declared []string
	for _, m := range rpc.FindAllStringSubmatch(string(src), -1) {
		declared = append(declared, m[1])
	}

	var served []string
	for _, m := range AuthServiceDesc.Methods {
		served = append(served, m.MethodName)
	}
	assert.ElementsMatch(t, declared, served)
}

func TestMethodNames(t *testing.T) {
	assert.Equal(t, "/gophauth.AuthService/SendCode", SendCodeMethod)
	assert.Equal(t, "/gophauth.AuthService/Register", RegisterMethod)
	assert.Equal(t, "/gophauth.AuthService/Login", LoginMethod)
}
