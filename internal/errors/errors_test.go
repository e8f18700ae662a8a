package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type notFound struct{ code string }

func (e *notFound) Error() string   { return "not found: " + e.code }
func (e *notFound) ErrorType() Type { return TypeNotFound }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Type
	}{
		{"nil", nil, ""},
		{"plain", stderrors.New("boom"), TypeInternal},
		{"typed", &notFound{"ZZ9"}, TypeNotFound},
		{"wrapped", fmt.Errorf("lookup: %w", &notFound{"ZZ9"}), TypeNotFound},
		{"classified", Wrap(TypeStorage, "save", stderrors.New("disk")), TypeStorage},
		{"joined", stderrors.Join(stderrors.New("x"), &notFound{"A"}), TypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitNotFound, ExitCode(&notFound{"Z"}))
	assert.Equal(t, ExitInput, ExitCode(Input("bad flag")))
	assert.Equal(t, ExitDuplicate, ExitCode(New(TypeDuplicateCode, "dup")))
	assert.Equal(t, ExitMalformedRow, ExitCode(New(TypeMalformedRow, "row")))
	assert.Equal(t, ExitInternal, ExitCode(stderrors.New("other")))
}

func TestIsType_WalksWholeChain(t *testing.T) {
	wrapped := Wrap(TypeStorage, "save", &notFound{"ZZ9"})
	assert.Equal(t, TypeStorage, Classify(wrapped))
	assert.True(t, IsType(wrapped, TypeStorage))
	assert.True(t, IsType(wrapped, TypeNotFound))

	joined := stderrors.Join(New(TypeMalformedRow, "row 3"), New(TypeDuplicateCode, "Z78"))
	assert.True(t, IsType(joined, TypeMalformedRow))
	assert.True(t, IsType(joined, TypeDuplicateCode))
	assert.False(t, IsType(joined, TypeNotFound))
	assert.False(t, IsType(nil, TypeInternal))
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(TypeConfig, "read config", stderrors.New("permission denied")).
		WithContext("path", "/etc/qualitymap.yaml")

	assert.Equal(t, "[CONFIG_ERROR] read config: permission denied", err.Error())
	assert.Equal(t, "/etc/qualitymap.yaml", err.Context["path"])
	assert.True(t, IsType(err, TypeConfig))
	assert.False(t, IsType(err, TypeInput))
}
