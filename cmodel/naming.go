package cmodel

import (
	"log"
	"sort"
	"strings"

	"github.com/zzl/go-cppapi-gen/cppmodel"
	"github.com/zzl/go-cppapi-gen/utils"
)

// BaseName derives the pre-disambiguation name of a candidate from scope
// and method identity alone.
func BaseName(c *Candidate) string {
	f := c.Source

	var scope string
	if f.Member != nil {
		scope = strings.ReplaceAll(f.ClassPath(), "::", "_")
	} else {
		scope = f.Unit + "_G"
	}

	var fragment string
	switch {
	case f.IsConstructor():
		if c.Place == PlaceHeap {
			fragment = "new"
		} else {
			fragment = "constructor"
		}
	case f.IsDestructor():
		if c.Place == PlaceHeap {
			fragment = "delete"
		} else {
			fragment = "destructor"
		}
	default:
		if f.IsOperator() {
			info := cppmodel.LookupOperator(f.Member.Operator)
			if info == nil {
				log.Panic("unclassified operator kind: engine defect")
			}
			if f.Member.Operator == cppmodel.OpConversion {
				fragment = "to_" + FullTypeCaption(f.ReturnType)
			} else {
				fragment = info.Fragment
			}
		} else {
			fragment = utils.CIdent(f.Name())
		}
		//the stack variant of a by-value-returning method gets its own
		//base name token, like constructor/new and destructor/delete
		if c.Place == PlaceStack {
			fragment += "_to_output"
		}
	}

	return scope + "_" + fragment
}

type captionStyle int

const (
	captionNone captionStyle = iota
	captionArgNames
	captionShortTypes
	captionShortTypesAndNames
	captionFullTypes
	captionFullTypesAndNames
)

type captionStrategy struct {
	Style     captionStyle
	WithConst bool
}

// captionStrategies is the fixed disambiguation order. It is data:
// groups are resolved by the first entry that yields pairwise distinct
// captions, and reordering entries changes output names.
var captionStrategies = []captionStrategy{
	{captionArgNames, false},
	{captionShortTypes, false},
	{captionShortTypesAndNames, false},
	{captionFullTypes, false},
	{captionFullTypesAndNames, false},
	{captionNone, true},
	{captionArgNames, true},
	{captionShortTypes, true},
	{captionShortTypesAndNames, true},
	{captionFullTypes, true},
	{captionFullTypesAndNames, true},
}

func strategyCaption(c *Candidate, strategy captionStrategy) string {
	var caption string
	if strategy.Style != captionNone {
		var parts []string
		for _, arg := range c.Arguments {
			if arg.Role != RolePositional {
				continue
			}
			parts = append(parts, argCaption(arg, strategy.Style))
		}
		if len(parts) == 0 {
			caption = "no_args"
		} else {
			caption = strings.Join(parts, "_")
		}
	}
	if strategy.WithConst && c.Source.Member != nil && c.Source.Member.Const {
		if caption == "" {
			caption = "const"
		} else {
			caption = "const_" + caption
		}
	}
	return caption
}

func argCaption(arg *Argument, style captionStyle) string {
	name := utils.CIdent(arg.Name)
	switch style {
	case captionArgNames:
		return name
	case captionShortTypes:
		return ShortTypeCaption(arg.Type.Original)
	case captionShortTypesAndNames:
		return ShortTypeCaption(arg.Type.Original) + "_" + name
	case captionFullTypes:
		return FullTypeCaption(arg.Type.Original)
	case captionFullTypesAndNames:
		return FullTypeCaption(arg.Type.Original) + "_" + name
	}
	log.Panic("unknown caption style: engine defect")
	return ""
}

// AssignNames gives every candidate a unique final name. Grouping is by
// sorted (base name, declaration order), never by map iteration, so two
// runs over the same input produce byte-identical names.
func AssignNames(candidates []*Candidate) ([]*NamedFunction, error) {
	entries := make([]*nameEntry, len(candidates))
	for n, c := range candidates {
		entries[n] = &nameEntry{candidate: c, baseName: BaseName(c)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].baseName != entries[j].baseName {
			return entries[i].baseName < entries[j].baseName
		}
		return entries[i].candidate.Order < entries[j].candidate.Order
	})

	var named []*NamedFunction
	for start := 0; start < len(entries); {
		end := start + 1
		for end < len(entries) && entries[end].baseName == entries[start].baseName {
			end++
		}
		group := entries[start:end]

		if len(group) == 1 {
			named = append(named, &NamedFunction{
				Candidate: group[0].candidate,
				BaseName:  group[0].baseName,
				FinalName: group[0].baseName,
			})
			start = end
			continue
		}

		captions := resolveGroup(group)
		if captions == nil {
			err := &AmbiguousOverloadError{BaseName: group[0].baseName}
			for _, e := range group {
				err.Candidates = append(err.Candidates, e.candidate)
			}
			return nil, err
		}
		for n, e := range group {
			nf := &NamedFunction{
				Candidate: e.candidate,
				BaseName:  e.baseName,
				Suffix:    captions[n],
				FinalName: e.baseName,
			}
			if captions[n] != "" {
				nf.FinalName = e.baseName + "_" + captions[n]
			}
			named = append(named, nf)
		}
		start = end
	}

	if err := checkUnique(named); err != nil {
		return nil, err
	}
	return named, nil
}

type nameEntry struct {
	candidate *Candidate
	baseName  string
}

// resolveGroup tries the caption strategies in their fixed order and
// returns the captions of the first strategy that separates the whole
// group, or nil when none does.
func resolveGroup(group []*nameEntry) []string {
	for _, strategy := range captionStrategies {
		captions := make([]string, len(group))
		seen := make(map[string]bool, len(group))
		distinct := true
		for n, e := range group {
			caption := strategyCaption(e.candidate, strategy)
			if seen[caption] {
				distinct = false
				break
			}
			seen[caption] = true
			captions[n] = caption
		}
		if distinct {
			return captions
		}
	}
	return nil
}

// checkUnique guards against cross-group collisions, where one group's
// suffixed name lands on another group's base name. Native input can
// produce this (a method literally named like another method's suffixed
// form), so it aborts the batch like any other unresolvable name clash.
func checkUnique(named []*NamedFunction) error {
	seen := make(map[string]*NamedFunction, len(named))
	for _, nf := range named {
		if prev := seen[nf.FinalName]; prev != nil {
			return &AmbiguousOverloadError{
				BaseName:   nf.FinalName,
				Candidates: []*Candidate{prev.Candidate, nf.Candidate},
			}
		}
		seen[nf.FinalName] = nf
	}
	return nil
}
