package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnexpectedChar        Code = 1001
	LexUnterminatedString    Code = 1002
	LexUnterminatedComment   Code = 1003
	LexUnterminatedTemplate  Code = 1004
	LexUnterminatedRegExp    Code = 1005
	LexBadNumber             Code = 1006
	LexBadEscape             Code = 1007
	LexNewlineInString       Code = 1008
	LexBadIdentEscape        Code = 1009

	// Syntactic
	SynUnexpectedToken      Code = 2001
	SynExpectToken          Code = 2002
	SynExpectIdent          Code = 2003
	SynExpectExpr           Code = 2004
	SynBadAssignTarget      Code = 2005
	SynBadDestructuring     Code = 2006
	SynBadArrowParams       Code = 2007
	SynReturnOutsideFn      Code = 2008
	SynIllegalBreak         Code = 2009
	SynIllegalContinue      Code = 2010
	SynImportOutsideModule  Code = 2011
	SynExportOutsideModule  Code = 2012
	SynDuplicateDefault     Code = 2013
	SynBadOptionalChain     Code = 2014
	SynRestNotLast          Code = 2015
	SynBadGetterSetter      Code = 2016
	SynNewTargetOutsideFn   Code = 2017
	SynTooManyErrors        Code = 2018
	SynSuperOutsideClass    Code = 2019
	SynBadForInOfTarget     Code = 2020
	SynConstWithoutInit     Code = 2021
	SynLabelRedeclared      Code = 2022
)

func (c Code) ID() string {
	return fmt.Sprintf("JS%04d", uint16(c))
}
