package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is an identifier or a contextual keyword (let, async, of, static,
	// get, set, as, from, yield, await, target, meta). The parser decides from
	// the surrounding context whether the text is meaningful.
	Ident
	// PrivateIdent is a class-private name such as #field.
	PrivateIdent

	// Num is a numeric literal in any base, including separators.
	Num
	// BigInt is a numeric literal with the n suffix.
	BigInt
	// Str is a single- or double-quoted string literal.
	Str
	// NoSubTemplate is `...` without substitutions.
	NoSubTemplate
	// TemplateHead is `...${ opening a substitution.
	TemplateHead
	// TemplateMiddle is }...${ between substitutions.
	TemplateMiddle
	// TemplateTail is }...` closing the template.
	TemplateTail
	// Regex is a regular expression literal, produced only by rescanning.
	Regex

	// Punctuators.
	LParen           // (
	RParen           // )
	LBracket         // [
	RBracket         // ]
	LBrace           // {
	RBrace           // }
	Semicolon        // ;
	Comma            // ,
	Dot              // .
	DotDotDot        // ...
	Arrow            // =>
	Colon            // :
	Question         // ?
	QuestionDot      // ?.
	QuestionQuestion // ??
	Tilde            // ~
	Bang             // !
	Assign           // =
	EqEq             // ==
	EqEqEq           // ===
	BangEq           // !=
	BangEqEq         // !==
	Lt               // <
	LtEq             // <=
	Shl              // <<
	Gt               // >
	GtEq             // >=
	Shr              // >>
	UShr             // >>>
	Plus             // +
	PlusPlus         // ++
	Minus            // -
	MinusMinus       // --
	Star             // *
	StarStar         // **
	Slash            // /
	Percent          // %
	Amp              // &
	AmpAmp           // &&
	Pipe             // |
	PipePipe         // ||
	Caret            // ^

	// Assignment operators beyond plain =.
	PlusAssign             // +=
	MinusAssign            // -=
	StarAssign             // *=
	StarStarAssign         // **=
	SlashAssign            // /=
	PercentAssign          // %=
	ShlAssign              // <<=
	ShrAssign              // >>=
	UShrAssign             // >>>=
	AmpAssign              // &=
	PipeAssign             // |=
	CaretAssign            // ^=
	AmpAmpAssign           // &&=
	PipePipeAssign         // ||=
	QuestionQuestionAssign // ??=

	// Reserved words.
	KwBreak      // break
	KwCase       // case
	KwCatch      // catch
	KwClass      // class
	KwConst      // const
	KwContinue   // continue
	KwDebugger   // debugger
	KwDefault    // default
	KwDelete     // delete
	KwDo         // do
	KwElse       // else
	KwEnum       // enum (reserved, never valid)
	KwExport     // export
	KwExtends    // extends
	KwFalse      // false
	KwFinally    // finally
	KwFor        // for
	KwFunction   // function
	KwIf         // if
	KwImport     // import
	KwIn         // in
	KwInstanceof // instanceof
	KwNew        // new
	KwNull       // null
	KwReturn     // return
	KwSuper      // super
	KwSwitch     // switch
	KwThis       // this
	KwThrow      // throw
	KwTrue       // true
	KwTry        // try
	KwTypeof     // typeof
	KwVar        // var
	KwVoid       // void
	KwWhile      // while
	KwWith       // with
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "end of file",
	Ident: "identifier", PrivateIdent: "private name",
	Num: "number", BigInt: "bigint", Str: "string",
	NoSubTemplate: "template", TemplateHead: "template", TemplateMiddle: "template", TemplateTail: "template",
	Regex: "regular expression",
	LParen: "'('", RParen: "')'", LBracket: "'['", RBracket: "']'",
	LBrace: "'{'", RBrace: "'}'", Semicolon: "';'", Comma: "','",
	Dot: "'.'", DotDotDot: "'...'", Arrow: "'=>'", Colon: "':'",
	Question: "'?'", QuestionDot: "'?.'", QuestionQuestion: "'??'",
	Tilde: "'~'", Bang: "'!'", Assign: "'='",
	EqEq: "'=='", EqEqEq: "'==='", BangEq: "'!='", BangEqEq: "'!=='",
	Lt: "'<'", LtEq: "'<='", Shl: "'<<'", Gt: "'>'", GtEq: "'>='",
	Shr: "'>>'", UShr: "'>>>'",
	Plus: "'+'", PlusPlus: "'++'", Minus: "'-'", MinusMinus: "'--'",
	Star: "'*'", StarStar: "'**'", Slash: "'/'", Percent: "'%'",
	Amp: "'&'", AmpAmp: "'&&'", Pipe: "'|'", PipePipe: "'||'", Caret: "'^'",
	PlusAssign: "'+='", MinusAssign: "'-='", StarAssign: "'*='",
	StarStarAssign: "'**='", SlashAssign: "'/='", PercentAssign: "'%='",
	ShlAssign: "'<<='", ShrAssign: "'>>='", UShrAssign: "'>>>='",
	AmpAssign: "'&='", PipeAssign: "'|='", CaretAssign: "'^='",
	AmpAmpAssign: "'&&='", PipePipeAssign: "'||='", QuestionQuestionAssign: "'??='",
	KwBreak: "'break'", KwCase: "'case'", KwCatch: "'catch'", KwClass: "'class'",
	KwConst: "'const'", KwContinue: "'continue'", KwDebugger: "'debugger'",
	KwDefault: "'default'", KwDelete: "'delete'", KwDo: "'do'", KwElse: "'else'",
	KwEnum: "'enum'", KwExport: "'export'", KwExtends: "'extends'",
	KwFalse: "'false'", KwFinally: "'finally'", KwFor: "'for'",
	KwFunction: "'function'", KwIf: "'if'", KwImport: "'import'", KwIn: "'in'",
	KwInstanceof: "'instanceof'", KwNew: "'new'", KwNull: "'null'",
	KwReturn: "'return'", KwSuper: "'super'", KwSwitch: "'switch'",
	KwThis: "'this'", KwThrow: "'throw'", KwTrue: "'true'", KwTry: "'try'",
	KwTypeof: "'typeof'", KwVar: "'var'", KwVoid: "'void'", KwWhile: "'while'",
	KwWith: "'with'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
