// Package ffi provides C FFI exports for the dialogue converters.
//
// Build with:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -o libdialogue.so ./pkg/ffi/
//
// All inputs/outputs are C strings. Message lists are JSON-serialized.
// The DialogueResult type provides both data and error fields; exactly
// one of them is set. Callers must free results with dialogue_result_free.
//
// The package is built as package main because -buildmode=c-shared
// requires it; it is not importable from Go.
package main

/*
#include <stdlib.h>

typedef struct {
	char* data;
	char* error;
} DialogueResult;
*/
import "C"
import (
	"encoding/json"
	"unsafe"

	"github.com/jmylchreest/dialogue/pkg/dialogue"
)

// === Converters ===

//export dialogue_rich_text_to_messages
func dialogue_rich_text_to_messages(richText *C.char, assistantName *C.char) C.DialogueResult {
	messages, err := dialogue.RichTextToMessages(C.GoString(richText), assistantOpts(assistantName)...)
	if err != nil {
		return makeError(err.Error())
	}
	return makeJSONResult(messages)
}

//export dialogue_rich_text_to_plain_transcript
func dialogue_rich_text_to_plain_transcript(richText *C.char) C.DialogueResult {
	transcript, err := dialogue.RichTextToPlainTranscript(C.GoString(richText))
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(transcript)
}

//export dialogue_plain_transcript_to_rich_text
func dialogue_plain_transcript_to_rich_text(plainText *C.char) C.DialogueResult {
	richText, err := dialogue.PlainTranscriptToRichText(C.GoString(plainText))
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(richText)
}

//export dialogue_plain_transcript_to_messages
func dialogue_plain_transcript_to_messages(plainText *C.char, assistantName *C.char) C.DialogueResult {
	messages, err := dialogue.PlainTranscriptToMessages(C.GoString(plainText), assistantOpts(assistantName)...)
	if err != nil {
		return makeError(err.Error())
	}
	return makeJSONResult(messages)
}

//export dialogue_messages_to_plain_transcript
func dialogue_messages_to_plain_transcript(messagesJSON *C.char) C.DialogueResult {
	var messages []dialogue.Message
	if err := json.Unmarshal([]byte(C.GoString(messagesJSON)), &messages); err != nil {
		return makeError(err.Error())
	}
	return makeResult(dialogue.MessagesToPlainTranscript(messages))
}

//export dialogue_markup_to_plain_text
func dialogue_markup_to_plain_text(text *C.char) C.DialogueResult {
	return makeResult(dialogue.MarkupToPlainText(C.GoString(text)))
}

// === Memory Management ===

//export dialogue_result_free
func dialogue_result_free(result C.DialogueResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// === Helpers ===

// assistantOpts maps a nullable C string to library options. NULL means
// "not supplied", which preserves each converter's fallback behavior.
func assistantOpts(name *C.char) []dialogue.Option {
	if name == nil {
		return nil
	}
	return []dialogue.Option{dialogue.WithAssistantName(C.GoString(name))}
}

func makeJSONResult(messages []dialogue.Message) C.DialogueResult {
	data, err := json.Marshal(messages)
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(string(data))
}

func makeResult(data string) C.DialogueResult {
	return C.DialogueResult{
		data:  C.CString(data),
		error: nil,
	}
}

func makeError(msg string) C.DialogueResult {
	return C.DialogueResult{
		data:  nil,
		error: C.CString(msg),
	}
}

// main is required for -buildmode=c-shared.
func main() {}
