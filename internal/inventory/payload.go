package inventory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParsePayload decodes a raw import payload into its category and catalog
// collections. The two sections share no state, so they decode concurrently.
// Any structural or validation failure rejects the whole payload.
func ParsePayload(raw []byte) (*Payload, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	categoriesRaw, ok := sections["Category"]
	if !ok {
		return nil, fmt.Errorf("%w: missing Category collection", ErrBadPayload)
	}
	catalogRaw, ok := sections["Catalog"]
	if !ok {
		return nil, fmt.Errorf("%w: missing Catalog collection", ErrBadPayload)
	}

	var p Payload
	var categoriesErr, catalogErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		categoriesErr = json.Unmarshal(categoriesRaw, &p.Categories)
	}()
	go func() {
		defer wg.Done()
		catalogErr = json.Unmarshal(catalogRaw, &p.Catalog)
	}()
	wg.Wait()

	if categoriesErr != nil {
		return nil, fmt.Errorf("%w: Category: %v", ErrBadPayload, categoriesErr)
	}
	if catalogErr != nil {
		return nil, fmt.Errorf("%w: Catalog: %v", ErrBadPayload, catalogErr)
	}

	for i, c := range p.Categories {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%w: Category[%d]: %v", ErrBadPayload, i, err)
		}
	}
	for i, e := range p.Catalog {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: Catalog[%d]: %v", ErrBadPayload, i, err)
		}
	}

	return &p, nil
}
