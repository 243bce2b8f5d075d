// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// UserKeyword is one keyword defined in a suite or resource file.
type UserKeyword struct {
	Name    string
	Doc     *Documentation
	Args    *Arguments
	Timeout *Timeout
	Return  *Return
	Steps   []*Step

	parent *KeywordTable
}

// Parent returns the table owning the keyword.
func (k *UserKeyword) Parent() *KeywordTable { return k.parent }

// SetSteps replaces the whole step sequence.
func (k *UserKeyword) SetSteps(steps []*Step) { k.Steps = steps }

// AddStep appends one step.
func (k *UserKeyword) AddStep(step *Step) { k.Steps = append(k.Steps, step) }

// KeywordTable is the ordered list of a document's user keywords.
type KeywordTable struct {
	Keywords []*UserKeyword

	parent *Datafile
}

// Parent returns the document owning the table.
func (k *KeywordTable) Parent() *Datafile { return k.parent }

// Add appends a new, empty user keyword.
func (k *KeywordTable) Add(name string) *UserKeyword {
	kw := &UserKeyword{
		Name:    name,
		Doc:     &Documentation{},
		Args:    &Arguments{},
		Timeout: &Timeout{},
		Return:  &Return{},
		parent:  k,
	}
	k.Keywords = append(k.Keywords, kw)
	return kw
}
