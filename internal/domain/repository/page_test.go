package repository_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

func TestPageFor(t *testing.T) {
	assert.Equal(t, repository.Page{Limit: 10, Offset: 0}, repository.PageFor(pagination.Request{Page: 0}))
	assert.Equal(t, repository.Page{Limit: 10, Offset: 30}, repository.PageFor(pagination.Request{Page: 4}))
}

func TestPageFor_PaginaEnormeDaOffsetValido(t *testing.T) {
	page := repository.PageFor(pagination.Request{Page: math.MaxInt})
	assert.Equal(t, 10, page.Limit)
	assert.GreaterOrEqual(t, page.Offset, 0)
}
