package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildPrompt renders the generation instruction for one interview request.
// It is a pure function of its inputs; techstack is embedded unsplit, exactly
// as the client sent it. The closing instructions are load-bearing: the
// parser in this package expects a bare JSON array of strings, and the
// questions are later read aloud by a voice assistant that chokes on "/"
// and "*".
func BuildPrompt(role, level, techstack, focus, amount string) string {
	return fmt.Sprintf(`Prepare questions for a job interview.
The job role is %s.
The job experience level is %s.
The tech stack used in the job is: %s.
The focus between behavioural and technical questions should lean towards: %s.
The amount of questions required is: %s.
Please return only the questions, without any additional text.
The questions are going to be read by a voice assistant, so do not use "/" or "*" or any other special characters which might break the voice assistant.
Return the questions formatted like this: ["Question 1", "Question 2", "Question 3"]`,
		role, level, techstack, focus, amount)
}

// Parse interprets generator output as a JSON array of question strings.
// It never fails: anything that is not a JSON array comes back as an empty
// list with ok=false so the caller can log the raw text and carry on. A
// record with zero questions beats losing the interview altogether.
//
// Non-string array elements are coerced to their compact JSON text rather
// than passed through untyped.
func Parse(text string) ([]string, bool) {
	cleaned := stripCodeFence(strings.TrimSpace(text))

	var elems []any
	if err := json.Unmarshal([]byte(cleaned), &elems); err != nil {
		return []string{}, false
	}

	questions := make([]string, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			questions = append(questions, v)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				continue
			}
			questions = append(questions, string(raw))
		}
	}
	return questions, true
}

// stripCodeFence removes a surrounding markdown code fence. Models wrap
// their output in ```json blocks despite being told not to.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
