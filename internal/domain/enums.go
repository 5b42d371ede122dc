package domain

import "strings"

// PartOfSpeech is the grammatical category ("tip") an author assigns to an
// interactive word.
type PartOfSpeech string

const (
	PartOfSpeechNoun        PartOfSpeech = "imenica"
	PartOfSpeechVerb        PartOfSpeech = "glagol"
	PartOfSpeechAdjective   PartOfSpeech = "pridev"
	PartOfSpeechAdverb      PartOfSpeech = "prilog"
	PartOfSpeechPronoun     PartOfSpeech = "zamenica"
	PartOfSpeechPreposition PartOfSpeech = "predlog"
	PartOfSpeechConjunction PartOfSpeech = "veznik"
	PartOfSpeechOther       PartOfSpeech = "ostalo"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction, PartOfSpeechOther:
		return true
	}
	return false
}

// ParsePartOfSpeech maps raw attribute text to a PartOfSpeech.
// Unknown values are unclassified (empty), never an error.
func ParsePartOfSpeech(s string) PartOfSpeech {
	p := PartOfSpeech(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return ""
	}
	return p
}

// GrammaticalCase ("padež") is used for reading filters only.
type GrammaticalCase string

const (
	CaseNominative GrammaticalCase = "nominativ"
	CaseGenitive   GrammaticalCase = "genitiv"
	CaseDative     GrammaticalCase = "dativ"
	CaseAccusative GrammaticalCase = "akuzativ"
)

// AllCases lists the cases in display order.
var AllCases = []GrammaticalCase{CaseNominative, CaseGenitive, CaseDative, CaseAccusative}

func (c GrammaticalCase) String() string { return string(c) }

func (c GrammaticalCase) IsValid() bool {
	switch c {
	case CaseNominative, CaseGenitive, CaseDative, CaseAccusative:
		return true
	}
	return false
}

// ParseGrammaticalCase maps raw attribute text to a case; unknown values are empty.
func ParseGrammaticalCase(s string) GrammaticalCase {
	c := GrammaticalCase(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return ""
	}
	return c
}

// BlockType is the tag of a LessonBlock variant.
type BlockType string

const (
	BlockTypeText       BlockType = "text"
	BlockTypeGrammar    BlockType = "grammar"
	BlockTypeVideo      BlockType = "video"
	BlockTypeQuiz       BlockType = "quiz"
	BlockTypeVocabulary BlockType = "vocabulary"
)

// AllBlockTypes lists block types in the order the admin offers them.
var AllBlockTypes = []BlockType{BlockTypeText, BlockTypeGrammar, BlockTypeVideo, BlockTypeQuiz, BlockTypeVocabulary}

func (t BlockType) String() string { return string(t) }

func (t BlockType) IsValid() bool {
	switch t {
	case BlockTypeText, BlockTypeGrammar, BlockTypeVideo, BlockTypeQuiz, BlockTypeVocabulary:
		return true
	}
	return false
}

// HasTextContent reports whether the block carries LessonContentBlock items.
func (t BlockType) HasTextContent() bool {
	return t == BlockTypeText || t == BlockTypeGrammar
}

// ContentItemType is the tag of an item inside a text or grammar block.
type ContentItemType string

const (
	ContentItemText     ContentItemType = "text"
	ContentItemHedgehog ContentItemType = "hedgehog"
)

func (t ContentItemType) IsValid() bool {
	return t == ContentItemText || t == ContentItemHedgehog
}

// QuizType is the tag of a Quiz variant.
type QuizType string

const (
	QuizMultipleChoice QuizType = "multiple-choice"
	QuizFillInTheBlank QuizType = "fill-in-the-blank"
	QuizMatch          QuizType = "match"
	QuizAudio          QuizType = "audio"
	QuizSentenceOrder  QuizType = "sentence-order"
)

func (t QuizType) String() string { return string(t) }

func (t QuizType) IsValid() bool {
	switch t {
	case QuizMultipleChoice, QuizFillInTheBlank, QuizMatch, QuizAudio, QuizSentenceOrder:
		return true
	}
	return false
}

// VocabularyTab is one of the Sprachgarten tabs personal words are grouped into.
type VocabularyTab string

const (
	TabNoun      VocabularyTab = "imenica"
	TabVerb      VocabularyTab = "glagol"
	TabAdjective VocabularyTab = "pridev"
	TabOther     VocabularyTab = "ostalo"
)

// AllTabs lists the tabs in display order.
var AllTabs = []VocabularyTab{TabNoun, TabVerb, TabAdjective, TabOther}

// TabFor returns the tab a stored word type is listed under.
func TabFor(p PartOfSpeech) VocabularyTab {
	switch p {
	case PartOfSpeechNoun:
		return TabNoun
	case PartOfSpeechVerb:
		return TabVerb
	case PartOfSpeechAdjective:
		return TabAdjective
	}
	return TabOther
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeLesson EntityType = "LESSON"
	EntityTypeBlock  EntityType = "BLOCK"
	EntityTypeUser   EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeLesson, EntityTypeBlock, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionReorder AuditAction = "REORDER"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionReorder:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
