package emoji

// Catalog source data. Search text for each emoji merges the symbol, its
// entry in baseAliases, the group-level aliases and its own aliases; all of
// it is normalized once at build time.

type item struct {
	symbol  string
	aliases []string
}

type group struct {
	name     string
	synonyms []string // exact-match fallbacks for the whole category
	aliases  []string // appended to every member's search text
	items    []item
}

// baseAliases is the global alias table, keyed by symbol, merged into every
// matching entry regardless of category.
var baseAliases = map[string][]string{
	"❤️": {"coração", "amor", "heart", "love"},
	"😂":  {"rindo", "risada", "lol", "haha"},
	"👍":  {"joinha", "ok", "beleza", "like"},
	"🔥":  {"fogo", "fire", "quente"},
	"🎉":  {"festa", "party", "parabéns"},
	"😢":  {"triste", "chorando", "sad"},
	"🍕":  {"pizza"},
	"⚽":  {"futebol", "bola", "soccer"},
	"🐶":  {"cachorro", "dog", "cão"},
	"🚗":  {"carro", "car"},
}

var groups = []group{
	{
		name:     "Carinhas",
		synonyms: []string{"carinhas", "rostos", "smileys", "emoções", "emocoes"},
		aliases:  []string{"rosto", "carinha", "face"},
		items: []item{
			{"😀", []string{"sorriso", "feliz", "grin"}},
			{"😃", []string{"sorriso", "alegre", "smile"}},
			{"😄", []string{"sorriso", "olhos", "feliz"}},
			{"😁", []string{"sorrindo", "dentes"}},
			{"😂", []string{"lágrimas", "chorando de rir"}},
			{"🤣", []string{"rolando", "rindo", "rofl"}},
			{"😊", []string{"tímido", "corado", "blush"}},
			{"😍", []string{"apaixonado", "olhos de coração"}},
			{"😘", []string{"beijo", "kiss"}},
			{"😎", []string{"óculos", "legal", "cool"}},
			{"🤔", []string{"pensando", "hmm", "thinking"}},
			{"😴", []string{"dormindo", "sono", "sleep"}},
			{"😢", []string{"lágrima"}},
			{"😭", []string{"chorando", "berrando", "cry"}},
			{"😡", []string{"bravo", "raiva", "angry"}},
			{"🤯", []string{"explodindo", "mente", "chocado"}},
			{"🥳", []string{"festa", "comemorando"}},
			{"😷", []string{"máscara", "doente", "mask"}},
		},
	},
	{
		name:     "Gestos",
		synonyms: []string{"gestos", "mãos", "maos", "hands"},
		aliases:  []string{"mão", "gesto", "hand"},
		items: []item{
			{"👍", []string{"polegar", "aprovado", "thumbs up"}},
			{"👎", []string{"polegar para baixo", "reprovado", "thumbs down"}},
			{"👋", []string{"tchau", "oi", "acenando", "wave"}},
			{"👏", []string{"palmas", "aplausos", "clap"}},
			{"🙏", []string{"obrigado", "por favor", "rezando", "pray"}},
			{"🤝", []string{"aperto", "acordo", "handshake"}},
			{"✌️", []string{"paz", "vitória", "peace"}},
			{"🤞", []string{"dedos cruzados", "sorte", "luck"}},
			{"💪", []string{"força", "músculo", "strong"}},
			{"👌", []string{"perfeito", "ok"}},
			{"✊", []string{"punho", "fist"}},
			{"🫶", []string{"coração com as mãos"}},
		},
	},
	{
		name:     "Corações",
		synonyms: []string{"corações", "coracoes", "amor", "hearts"},
		aliases:  []string{"coração", "heart"},
		items: []item{
			{"❤️", []string{"vermelho", "red"}},
			{"🧡", []string{"laranja", "orange"}},
			{"💛", []string{"amarelo", "yellow"}},
			{"💚", []string{"verde", "green"}},
			{"💙", []string{"azul", "blue"}},
			{"💜", []string{"roxo", "purple"}},
			{"🖤", []string{"preto", "black"}},
			{"💔", []string{"partido", "broken"}},
			{"💕", []string{"dois corações"}},
			{"💖", []string{"brilhando", "sparkle"}},
			{"💘", []string{"flecha", "cupido"}},
		},
	},
	{
		name:     "Animais",
		synonyms: []string{"animais", "bicho", "bichos", "pet", "pets", "animals"},
		aliases:  []string{"animal", "bicho"},
		items: []item{
			{"🐶", []string{"filhote", "puppy"}},
			{"🐱", []string{"gato", "cat"}},
			{"🐭", []string{"rato", "mouse"}},
			{"🐰", []string{"coelho", "rabbit"}},
			{"🦊", []string{"raposa", "fox"}},
			{"🐻", []string{"urso", "bear"}},
			{"🐼", []string{"panda"}},
			{"🦁", []string{"leão", "lion"}},
			{"🐮", []string{"vaca", "boi", "cow"}},
			{"🐷", []string{"porco", "pig"}},
			{"🐸", []string{"sapo", "frog"}},
			{"🐵", []string{"macaco", "monkey"}},
			{"🐔", []string{"galinha", "chicken"}},
			{"🐧", []string{"pinguim", "penguin"}},
			{"🦋", []string{"borboleta", "butterfly"}},
			{"🐢", []string{"tartaruga", "turtle"}},
			{"🐬", []string{"golfinho", "dolphin"}},
		},
	},
	{
		name:     "Comidas",
		synonyms: []string{"comidas", "comida", "food", "lanche"},
		aliases:  []string{"comida", "food"},
		items: []item{
			{"🍕", []string{"fatia"}},
			{"🍔", []string{"hambúrguer", "lanche", "burger"}},
			{"🍟", []string{"batata frita", "fries"}},
			{"🌭", []string{"cachorro-quente", "hot dog"}},
			{"🍿", []string{"pipoca", "popcorn"}},
			{"🍦", []string{"sorvete", "ice cream"}},
			{"🍩", []string{"rosquinha", "donut"}},
			{"🍪", []string{"biscoito", "cookie"}},
			{"🎂", []string{"bolo", "aniversário", "cake"}},
			{"🍎", []string{"maçã", "apple"}},
			{"🍌", []string{"banana"}},
			{"🍉", []string{"melancia", "watermelon"}},
			{"☕", []string{"café", "coffee"}},
			{"🍺", []string{"cerveja", "beer"}},
			{"🧉", []string{"chimarrão", "mate"}},
		},
	},
	{
		name:     "Atividades",
		synonyms: []string{"atividades", "esportes", "esporte", "sports", "jogos"},
		aliases:  []string{"esporte", "jogo"},
		items: []item{
			{"⚽", []string{"gol"}},
			{"🏀", []string{"basquete", "basketball"}},
			{"🏐", []string{"vôlei", "volleyball"}},
			{"🎾", []string{"tênis", "tennis"}},
			{"🏓", []string{"ping pong", "tênis de mesa"}},
			{"🎮", []string{"videogame", "controle", "game"}},
			{"🎲", []string{"dado", "dice"}},
			{"🎸", []string{"violão", "guitarra", "guitar"}},
			{"🎤", []string{"microfone", "karaokê", "mic"}},
			{"🎉", []string{"confete"}},
			{"🏆", []string{"troféu", "campeão", "trophy"}},
			{"🎯", []string{"alvo", "dardo", "target"}},
		},
	},
	{
		name:     "Viagem",
		synonyms: []string{"viagem", "lugares", "transporte", "travel"},
		aliases:  []string{"viagem", "lugar"},
		items: []item{
			{"🚗", []string{"automóvel"}},
			{"🚕", []string{"táxi", "taxi"}},
			{"🚌", []string{"ônibus", "bus"}},
			{"🚲", []string{"bicicleta", "bike"}},
			{"✈️", []string{"avião", "voo", "plane"}},
			{"🚀", []string{"foguete", "rocket"}},
			{"🚢", []string{"navio", "ship"}},
			{"🏖️", []string{"praia", "beach"}},
			{"🏔️", []string{"montanha", "mountain"}},
			{"🌅", []string{"nascer do sol", "sunrise"}},
			{"🗺️", []string{"mapa", "map"}},
		},
	},
	{
		name:     "Objetos",
		synonyms: []string{"objetos", "coisas", "objects"},
		aliases:  []string{"objeto"},
		items: []item{
			{"📱", []string{"celular", "telefone", "phone"}},
			{"💻", []string{"notebook", "computador", "laptop"}},
			{"⌚", []string{"relógio", "watch"}},
			{"📷", []string{"câmera", "foto", "camera"}},
			{"💡", []string{"lâmpada", "ideia", "idea"}},
			{"🔑", []string{"chave", "key"}},
			{"📎", []string{"clipe", "anexo", "paperclip"}},
			{"📌", []string{"alfinete", "fixar", "pin"}},
			{"✏️", []string{"lápis", "pencil"}},
			{"📚", []string{"livros", "estudo", "books"}},
			{"🎁", []string{"presente", "gift"}},
			{"🔥", []string{"chama"}},
		},
	},
	{
		name:     "Símbolos",
		synonyms: []string{"símbolos", "simbolos", "sinais", "symbols"},
		aliases:  []string{"símbolo"},
		items: []item{
			{"✅", []string{"certo", "feito", "check"}},
			{"❌", []string{"errado", "não", "x"}},
			{"⚠️", []string{"atenção", "aviso", "warning"}},
			{"❓", []string{"pergunta", "dúvida", "question"}},
			{"❗", []string{"exclamação", "importante"}},
			{"💯", []string{"cem", "perfeito", "100"}},
			{"➕", []string{"mais", "plus"}},
			{"➖", []string{"menos", "minus"}},
			{"♻️", []string{"reciclar", "recycle"}},
			{"🔔", []string{"sino", "notificação", "bell"}},
			{"⭐", []string{"estrela", "favorito", "star"}},
			{"✨", []string{"brilho", "sparkles"}},
		},
	},
}
