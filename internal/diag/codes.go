package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnclosedDelimiter     Code = 2002
	SynUnclosedBlockComment  Code = 2003
	SynUnclosedString        Code = 2004
	SynUnclosedParen         Code = 2005
	SynUnclosedBrace         Code = 2006
	SynUnclosedBracket       Code = 2007
	SynExpectSemicolon       Code = 2008
	SynTypeExpectEquals      Code = 2009
	SynTypeExpectBody        Code = 2010
	SynTypeExpectUnionMember Code = 2011
	SynTypeDuplicateMember   Code = 2012
	SynEnumExpectBody        Code = 2013
	SynEnumExpectRBrace      Code = 2014

	// import errors & warnings
	SynInfoImportGroup    Code = 2100
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectModuleSeg    Code = 2103
	SynExpectItemAfterDbl Code = 2104
	SynExpectIdentAfterAs Code = 2105
	SynEmptyImportGroup   Code = 2106

	// type/expression syntax
	SynInfoTypeExpr       Code = 2200
	SynExpectRightBracket Code = 2201
	SynExpectType         Code = 2202
	SynExpectExpression   Code = 2203
	SynExpectColon        Code = 2204
	SynInvalidTupleIndex  Code = 2205

	// commands & precedence parsing (#infixl/#infixr and friends)
	SynUnknownCommand      Code = 2300
	SynCommandBadArgs      Code = 2301
	SynDuplicatePrecedence Code = 2302

	// Name resolution
	ResInfo                   Code = 3000
	ResUnresolvedSymbol       Code = 3001
	ResDuplicateSymbol        Code = 3002
	ResShadowedBinding        Code = 3003
	ResAmbiguousCtorOrBinding Code = 3004
	ResModuleMemberNotFound   Code = 3005
	ResModuleMemberNotPublic  Code = 3006
	ResSelfOutsideMethod      Code = 3007
	ResShadowedImport         Code = 3008

	// HIR lowering
	LowerInfo              Code = 3500
	LowerUnsupportedDecl   Code = 3501
	LowerUnsupportedExpr   Code = 3502
	LowerUnsupportedPat    Code = 3503
	LowerMalformedLiteral  Code = 3504
	LowerRecoveredFromErr  Code = 3505
	LowerNonExhaustiveCase Code = 3506
	LowerDuplicateSignature Code = 3507
	LowerInferredTypeRequired Code = 3508

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Ошибки проекта / DAG
	ProjInfo                    Code = 5000
	ProjDuplicateModule         Code = 5001
	ProjMissingModule           Code = 5002
	ProjSelfImport              Code = 5003
	ProjImportCycle             Code = 5004
	ProjInvalidModulePath       Code = 5005
	ProjInvalidImportPath       Code = 5006
	ProjDependencyFailed        Code = 5007
	ProjMissingModulePragma     Code = 5008
	ProjInconsistentModuleName  Code = 5009
	ProjWrongModuleNameInImport Code = 5010

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexTokenTooLong:             "Token too long",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynUnclosedBlockComment:     "Unclosed block comment",
		SynUnclosedString:           "Unclosed string",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynUnclosedBrace:            "Unclosed brace",
		SynUnclosedBracket:          "Unclosed bracket",
		SynExpectSemicolon:          "Expect semicolon",
		SynTypeExpectEquals:         "Expected '=' in type declaration",
		SynTypeExpectBody:           "Expected type body",
		SynTypeExpectUnionMember:    "Expected union member",
		SynTypeDuplicateMember:      "Duplicate union member",
		SynEnumExpectBody:           "Expected '{' for enum body",
		SynEnumExpectRBrace:         "Expected '}' after enum body",
		SynInfoImportGroup:          "Import group information",
		SynUnexpectedTopLevel:       "Unexpected top level",
		SynExpectIdentifier:         "Expect identifier",
		SynExpectModuleSeg:         "Expect module segment",
		SynExpectItemAfterDbl:       "Expect item after double colon",
		SynExpectIdentAfterAs:       "Expect identifier after as",
		SynEmptyImportGroup:         "Empty import group",
		SynInfoTypeExpr:             "Type expression information",
		SynExpectRightBracket:       "Expect right bracket",
		SynExpectType:               "Expect type",
		SynExpectExpression:         "Expect expression",
		SynExpectColon:              "Expect colon",
		SynInvalidTupleIndex:        "Invalid tuple index",
		SynUnknownCommand:           "Unknown command",
		SynCommandBadArgs:           "Malformed command arguments",
		SynDuplicatePrecedence:      "Duplicate precedence declaration for operator",
		ResInfo:                     "Resolution information",
		ResUnresolvedSymbol:         "Unresolved symbol",
		ResDuplicateSymbol:          "Duplicate symbol in scope",
		ResShadowedBinding:          "Binding shadows an outer name",
		ResAmbiguousCtorOrBinding:   "Ambiguous constructor or binding pattern",
		ResModuleMemberNotFound:     "Module member not found",
		ResModuleMemberNotPublic:    "Module member is not public",
		ResSelfOutsideMethod:        "'self' used outside a method",
		ResShadowedImport:           "Import shadows an existing name",
		LowerInfo:                   "Lowering information",
		LowerUnsupportedDecl:        "Declaration cannot be lowered",
		LowerUnsupportedExpr:        "Expression cannot be lowered",
		LowerUnsupportedPat:         "Pattern cannot be lowered",
		LowerMalformedLiteral:       "Malformed literal",
		LowerRecoveredFromErr:       "Lowered an Error node from a failed pass",
		LowerNonExhaustiveCase:      "Match arms do not cover every case of an Error-free CST",
		LowerDuplicateSignature:     "Duplicate signature for the same name",
		LowerInferredTypeRequired:   "An explicit type is required in this position",
		IOLoadFileError:             "I/O load file error",
		ProjInfo:                    "Project information",
		ProjDuplicateModule:         "Duplicate module definition",
		ProjMissingModule:           "Missing module",
		ProjSelfImport:              "Module imports itself",
		ProjImportCycle:             "Import cycle detected",
		ProjInvalidModulePath:       "Invalid module path",
		ProjInvalidImportPath:       "Invalid import path",
		ProjDependencyFailed:        "Dependency module has errors",
		ProjMissingModulePragma:     "Missing module pragma",
		ProjInconsistentModuleName:  "Inconsistent module name within directory",
		ProjWrongModuleNameInImport: "Wrong module name in import",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 3500:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 3500 && ic < 4000:
		return fmt.Sprintf("LOW%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
