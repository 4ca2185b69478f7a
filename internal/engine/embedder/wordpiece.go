package embedder

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxSeqLen = 128

// encoded holds tokenized input ready for ONNX inference. All slices are
// flat: [batchSize * seqLen].
type encoded struct {
	inputIDs      []int64
	attentionMask []int64
	tokenTypeIDs  []int64
	batchSize     int64
	seqLen        int64
}

// wordpiece performs BERT-style WordPiece tokenization against a loaded
// vocabulary.
type wordpiece struct {
	vocab *vocab
}

func newWordpiece(vocabPath string) (*wordpiece, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &wordpiece{vocab: v}, nil
}

// encode converts one text into padded ID slices of length maxSeqLen,
// wrapped in [CLS] and [SEP].
func (t *wordpiece) encode(text string) (inputIDs, attentionMask []int64) {
	tokens := t.subTokens(basicTokens(text))

	maxTokens := maxSeqLen - 2
	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}

	ids := make([]int64, maxSeqLen)
	mask := make([]int64, maxSeqLen)

	ids[0] = t.vocab.clsID
	mask[0] = 1
	for i, tok := range tokens {
		ids[i+1] = t.vocab.lookup(tok)
		mask[i+1] = 1
	}
	ids[len(tokens)+1] = t.vocab.sepID
	mask[len(tokens)+1] = 1

	return ids, mask
}

// encodeBatch tokenizes several texts and packs them into flat slices
// padded to the longest sequence in the batch.
func (t *wordpiece) encodeBatch(texts []string) encoded {
	n := len(texts)
	if n == 0 {
		return encoded{}
	}

	type seq struct {
		ids  []int64
		mask []int64
	}
	seqs := make([]seq, n)
	maxLen := int64(0)

	for i, text := range texts {
		ids, mask := t.encode(text)
		realLen := int64(0)
		for _, m := range mask {
			if m == 1 {
				realLen++
			}
		}
		seqs[i] = seq{ids: ids, mask: mask}
		if realLen > maxLen {
			maxLen = realLen
		}
	}

	batchSize := int64(n)
	seqLen := maxLen
	total := batchSize * seqLen

	out := encoded{
		inputIDs:      make([]int64, total),
		attentionMask: make([]int64, total),
		tokenTypeIDs:  make([]int64, total),
		batchSize:     batchSize,
		seqLen:        seqLen,
	}
	for i, s := range seqs {
		offset := int64(i) * seqLen
		copy(out.inputIDs[offset:offset+seqLen], s.ids[:seqLen])
		copy(out.attentionMask[offset:offset+seqLen], s.mask[:seqLen])
	}
	return out
}

// subTokens decomposes each basic token into WordPiece subwords.
func (t *wordpiece) subTokens(tokens []string) []string {
	var result []string
	for _, token := range tokens {
		if len(token) == 0 {
			continue
		}
		result = append(result, t.decompose(token)...)
	}
	return result
}

// decompose applies greedy longest-match WordPiece to one token.
func (t *wordpiece) decompose(token string) []string {
	runes := []rune(token)
	if len(runes) > 200 {
		return []string{"[UNK]"}
	}

	var subTokens []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		found := false
		for end > start {
			sub := string(runes[start:end])
			if start > 0 {
				sub = "##" + sub
			}
			if t.vocab.contains(sub) {
				subTokens = append(subTokens, sub)
				found = true
				break
			}
			end--
		}
		if !found {
			return []string{"[UNK]"}
		}
		start = end
	}
	return subTokens
}

// basicTokens lowercases, strips accents, and splits on whitespace and
// punctuation, keeping punctuation as separate tokens per BERT's basic
// tokenizer.
func basicTokens(text string) []string {
	var cleaned strings.Builder
	cleaned.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || (unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r') {
			continue
		}
		if unicode.IsSpace(r) {
			cleaned.WriteRune(' ')
		} else {
			cleaned.WriteRune(r)
		}
	}

	lowered := strings.ToLower(cleaned.String())

	var stripped strings.Builder
	stripped.Grow(len(lowered))
	for _, r := range norm.NFD.String(lowered) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		stripped.WriteRune(r)
	}

	var tokens []string
	for _, word := range strings.Fields(stripped.String()) {
		var current strings.Builder
		for _, r := range word {
			if isBertPunct(r) {
				if current.Len() > 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
				tokens = append(tokens, string(r))
				continue
			}
			current.WriteRune(r)
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
		}
	}
	return tokens
}

func isBertPunct(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
