package classify

import "strings"

// Keyword tables are fixed, lowercase, and shared by all calls. Matching is
// deliberately permissive: a keyword counts if it appears anywhere in the
// text, including inside a larger word. Non-English entries cover the most
// common prompt languages seen in routing traffic.

var codeKeywords = []string{
	"```", "func ", "def ", "class ", "import ", "return ",
	"struct ", "interface ", "const ", "var ", "print(", "console.log",
	"compile", "stack trace", "segfault", "syntax error", "unit test",
	"regex", "sql", "python", "javascript", "typescript", "golang", "rust",
	"代码", "コード", "код",
}

var reasoningKeywords = []string{
	"prove", "proof", "theorem", "lemma", "axiom", "derive", "derivation",
	"step by step", "step-by-step", "chain of thought", "deduce", "infer",
	"induction", "contradiction", "formally", "rigorous",
	"from first principles", "logical",
	"证明", "推理", "逐步", "証明", "推論", "докажи", "доказательство",
}

var simpleKeywords = []string{
	"hello", "hey ", "thanks", "thank you", "good morning", "good night",
	"what time", "what day", "how are you", "translate",
	"hola", "gracias", "bonjour", "merci", "你好", "谢谢",
	"こんにちは", "ありがとう", "привет", "спасибо", "안녕",
}

var technicalKeywords = []string{
	"algorithm", "architecture", "database", "distributed", "concurrency",
	"latency", "throughput", "encryption", "authentication", "kubernetes",
	"microservice", "compiler", "protocol", "scalability", "idempotent",
	"serialization", "transaction", "replication", "sharding", "scheduler",
	"gradient", "neural", "bayesian", "算法", "アルゴリズム", "алгоритм",
}

var creativeKeywords = []string{
	"story", "poem", "creative", "imagine", "fiction", "narrative",
	"song", "screenplay", "haiku", "novel", "lyrics",
	"诗", "小説", "стихотворение",
}

var imperativeKeywords = []string{
	"implement", "build", "create", "design", "refactor", "optimize",
	"optimise", "migrate", "integrate", "deploy", "configure",
	"作成", "реализуй", "实现",
}

var constraintKeywords = []string{
	"must", "should", "require", "ensure", "at least", "at most",
	"no more than", "only use", "without using", "exactly", "limit",
	"必须", "限制", "обязательно",
}

var outputFormatKeywords = []string{
	"json", "yaml", "csv", "xml", "markdown", "table", "bullet points",
	"format as", "output as", "in the form of", "表格", "形式",
}

var referenceKeywords = []string{
	"above", "previous", "as mentioned", "refer to", "based on the",
	"the following", "attached", "according to", "上述", "前述",
}

var negationKeywords = []string{
	"not ", "don't", "do not", "never", "without", "avoid", "except",
	"exclude", "neither", "nor ", "不要", "нельзя",
}

var domainKeywords = []string{
	"quantum", "genomic", "blockchain", "derivatives", "actuarial",
	"epidemiology", "jurisprudence", "thermodynamics", "cryptographic",
	"stochastic", "tensor", "量子", "ブロックチェーン",
}

var agenticKeywords = []string{
	"file", "execute", "command", "search", "directory", "repository",
	"script", "install", "terminal", "shell", "browse", "fetch",
	"download", "grep", "iterate", "retry", "verify",
	"工具", "运行", "実行", "터미널",
}

// countKeywordMatches returns how many distinct keywords from the set occur
// as substrings of text. Text is expected to be lowercased already.
func countKeywordMatches(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
