package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/archivekit/formset/pkg/formtree"
)

// Filler walks a row's fields and asks the driver for each value.
type Filler struct {
	driver Driver
}

// Option configures a Filler.
type Option func(*Filler)

// WithDriver swaps the terminal driver. Mostly useful in tests.
func WithDriver(driver Driver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// NewFiller constructs a Filler backed by the real terminal unless an option
// says otherwise.
func NewFiller(options ...Option) *Filler {
	f := &Filler{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill prompts for every visible field of the row and writes the answers
// back into the tree. Hidden fields and the DELETE control are skipped; a
// deleted row is skipped entirely.
func (f *Filler) Fill(ctx context.Context, row *formtree.Row) error {
	if row == nil {
		return errors.New("prompt: nil row")
	}
	if row.BodyHidden {
		return nil
	}
	for _, field := range row.Fields {
		if field.Hidden || field.Kind == formtree.KindHidden {
			continue
		}
		if strings.HasSuffix(field.Name, formtree.DeleteFieldSuffix) {
			continue
		}
		if err := f.fillField(ctx, field); err != nil {
			return fmt.Errorf("prompt: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func (f *Filler) fillField(ctx context.Context, field *formtree.Field) error {
	message := field.Label
	if message == "" {
		message = bareName(field.Name)
	}

	switch field.Kind {
	case formtree.KindTextarea, formtree.KindRichText:
		value, err := f.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: field.Value,
		})
		if err != nil {
			return err
		}
		field.Value = value

	case formtree.KindSelect, formtree.KindSearchSelect, formtree.KindRemoteSelect:
		if len(field.Options) == 0 {
			// Remote-backed selects without preloaded options degrade to
			// free text entry in the terminal.
			return f.fillText(ctx, field, message)
		}
		idx, err := f.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, field.Value),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			field.Value = field.Options[idx]
		}

	case formtree.KindCheckbox:
		checked, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: field.Checked,
		})
		if err != nil {
			return err
		}
		field.Checked = checked

	default:
		return f.fillText(ctx, field, message)
	}
	return nil
}

func (f *Filler) fillText(ctx context.Context, field *formtree.Field, message string) error {
	cfg := InputConfig{Message: message, Default: field.Value}
	if field.Required {
		cfg.Validator = func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("a value is required")
			}
			return nil
		}
	}
	value, err := f.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	field.Value = value
	return nil
}

// bareName strips the group prefix and index from a compound field name.
func bareName(name string) string {
	if at := strings.LastIndex(name, "-"); at >= 0 {
		return name[at+1:]
	}
	return name
}
