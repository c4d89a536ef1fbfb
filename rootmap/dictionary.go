package rootmap

import "github.com/c360/ptil/csc"

// predicateDictionary maps a lowercase lemma to its candidate ROOTs, most
// preferred first. Most lemmas have exactly one candidate; a handful are
// genuinely ambiguous between two ROOTs and carry both, ordered the way
// disambiguate's POS/dependency rules expect to find them.
//
// Ported from the predicate table the original Python ROOTMapper builds in
// _build_predicate_dictionary, including its three doubly-assigned lemmas
// (develop, plan, want) collapsed to their final, intended two-candidate
// entries.
var predicateDictionary = map[string][]csc.Root{
	// MOTION
	"go": {csc.RootMotion}, "come": {csc.RootMotion}, "walk": {csc.RootMotion},
	"run": {csc.RootMotion}, "travel": {csc.RootMotion}, "move": {csc.RootMotion},
	"drive": {csc.RootMotion}, "fly": {csc.RootMotion}, "swim": {csc.RootMotion},
	"jump": {csc.RootMotion}, "climb": {csc.RootMotion}, "fall": {csc.RootMotion},
	"rise": {csc.RootMotion}, "descend": {csc.RootMotion}, "approach": {csc.RootMotion},
	"depart": {csc.RootMotion}, "arrive": {csc.RootMotion}, "leave": {csc.RootMotion},
	"enter": {csc.RootMotion}, "exit": {csc.RootMotion}, "return": {csc.RootMotion},
	"jog": {csc.RootMotion}, "sprint": {csc.RootMotion}, "dash": {csc.RootMotion},
	"hurry": {csc.RootMotion}, "rush": {csc.RootMotion},
	// Spanish/French/German/Italian motion lemmas, for P9 cross-lingual ROOT equality.
	"correr": {csc.RootMotion}, "ir": {csc.RootMotion}, "courir": {csc.RootMotion},
	"aller": {csc.RootMotion}, "laufen": {csc.RootMotion}, "gehen": {csc.RootMotion},
	"correre": {csc.RootMotion}, "andare": {csc.RootMotion},

	// TRANSFER
	"give": {csc.RootTransfer}, "take": {csc.RootTransfer}, "send": {csc.RootTransfer},
	"receive": {csc.RootTransfer}, "deliver": {csc.RootTransfer}, "hand": {csc.RootTransfer},
	"pass": {csc.RootTransfer}, "provide": {csc.RootTransfer}, "supply": {csc.RootTransfer},
	"offer": {csc.RootTransfer}, "donate": {csc.RootTransfer}, "lend": {csc.RootTransfer},
	"borrow": {csc.RootTransfer}, "steal": {csc.RootTransfer}, "rob": {csc.RootTransfer},
	"dar": {csc.RootTransfer}, "donner": {csc.RootTransfer}, "geben": {csc.RootTransfer},
	"dare": {csc.RootTransfer},

	// COMMUNICATION
	"say": {csc.RootCommunication}, "tell": {csc.RootCommunication}, "speak": {csc.RootCommunication},
	"talk": {csc.RootCommunication}, "communicate": {csc.RootCommunication}, "discuss": {csc.RootCommunication},
	"explain": {csc.RootCommunication}, "describe": {csc.RootCommunication}, "announce": {csc.RootCommunication},
	"declare": {csc.RootCommunication}, "whisper": {csc.RootCommunication}, "shout": {csc.RootCommunication},
	"ask": {csc.RootCommunication}, "answer": {csc.RootCommunication}, "reply": {csc.RootCommunication},
	"respond": {csc.RootCommunication}, "argue": {csc.RootCommunication}, "debate": {csc.RootCommunication},

	// COGNITION
	"think": {csc.RootCognition}, "know": {csc.RootCognition}, "understand": {csc.RootCognition},
	"realize": {csc.RootCognition}, "remember": {csc.RootCognition}, "forget": {csc.RootCognition},
	"learn": {csc.RootCognition}, "study": {csc.RootCognition}, "consider": {csc.RootCognition},
	"believe": {csc.RootCognition}, "doubt": {csc.RootCognition}, "wonder": {csc.RootCognition},
	"imagine": {csc.RootCognition}, "dream": {csc.RootCognition}, "decide": {csc.RootCognition},
	"choose": {csc.RootCognition},

	// PERCEPTION
	"see": {csc.RootPerception}, "look": {csc.RootPerception}, "watch": {csc.RootPerception},
	"observe": {csc.RootPerception}, "notice": {csc.RootPerception}, "hear": {csc.RootPerception},
	"listen": {csc.RootPerception}, "feel": {csc.RootPerception}, "touch": {csc.RootPerception},
	"taste": {csc.RootPerception}, "smell": {csc.RootPerception}, "sense": {csc.RootPerception},
	"detect": {csc.RootPerception}, "discover": {csc.RootPerception}, "find": {csc.RootPerception},

	// CREATION
	"make": {csc.RootCreation}, "create": {csc.RootCreation}, "build": {csc.RootCreation},
	"construct": {csc.RootCreation}, "produce": {csc.RootCreation}, "manufacture": {csc.RootCreation},
	"generate": {csc.RootCreation}, "design": {csc.RootCreation}, "invent": {csc.RootCreation},
	"compose": {csc.RootCreation}, "write": {csc.RootCreation}, "draw": {csc.RootCreation},
	"paint": {csc.RootCreation}, "sculpt": {csc.RootCreation}, "craft": {csc.RootCreation},
	"form": {csc.RootCreation}, "shape": {csc.RootCreation},

	// DESTRUCTION
	"destroy": {csc.RootDestruction}, "break": {csc.RootDestruction}, "damage": {csc.RootDestruction},
	"ruin": {csc.RootDestruction}, "demolish": {csc.RootDestruction}, "wreck": {csc.RootDestruction},
	"smash": {csc.RootDestruction}, "crush": {csc.RootDestruction}, "tear": {csc.RootDestruction},
	"cut": {csc.RootDestruction}, "burn": {csc.RootDestruction}, "melt": {csc.RootDestruction},
	"dissolve": {csc.RootDestruction}, "erase": {csc.RootDestruction}, "delete": {csc.RootDestruction},
	"remove": {csc.RootDestruction}, "eliminate": {csc.RootDestruction},

	// CHANGE
	"change": {csc.RootChange}, "transform": {csc.RootChange}, "convert": {csc.RootChange},
	"alter": {csc.RootChange}, "modify": {csc.RootChange}, "adjust": {csc.RootChange},
	"adapt": {csc.RootChange}, "evolve": {csc.RootChange}, "develop": {csc.RootChange, csc.RootCreation},
	"grow": {csc.RootChange}, "shrink": {csc.RootChange}, "expand": {csc.RootChange},
	"contract": {csc.RootChange}, "improve": {csc.RootChange}, "worsen": {csc.RootChange},
	"become": {csc.RootChange}, "turn": {csc.RootChange},

	// POSSESSION
	"have": {csc.RootPossession}, "own": {csc.RootPossession}, "possess": {csc.RootPossession},
	"hold": {csc.RootPossession}, "keep": {csc.RootPossession}, "retain": {csc.RootPossession},
	"acquire": {csc.RootPossession}, "obtain": {csc.RootPossession}, "gain": {csc.RootPossession},
	"lose": {csc.RootPossession}, "lack": {csc.RootPossession}, "need": {csc.RootPossession},
	"require": {csc.RootPossession},

	// INTENTION
	"intend": {csc.RootIntention}, "plan": {csc.RootIntention, csc.RootCognition}, "aim": {csc.RootIntention},
	"hope": {csc.RootIntention}, "wish": {csc.RootIntention}, "desire": {csc.RootIntention},
	"want": {csc.RootIntention, csc.RootPossession}, "try": {csc.RootIntention}, "attempt": {csc.RootIntention},
	"strive": {csc.RootIntention}, "seek": {csc.RootIntention}, "pursue": {csc.RootIntention},

	// EXISTENCE
	"be": {csc.RootExistence}, "exist": {csc.RootExistence}, "live": {csc.RootExistence},
	"die": {csc.RootExistence}, "survive": {csc.RootExistence}, "remain": {csc.RootExistence},
	"stay": {csc.RootExistence}, "continue": {csc.RootExistence}, "persist": {csc.RootExistence},
	"endure": {csc.RootExistence}, "last": {csc.RootExistence}, "occur": {csc.RootExistence},
	"happen": {csc.RootExistence}, "sleep": {csc.RootExistence},
	"dormir": {csc.RootExistence}, "dormire": {csc.RootExistence}, "schlafen": {csc.RootExistence},
}

// SynonymGroups lists lemma sets the ROOT Mapper must resolve to the same
// ROOT (spec P4: synonym consistency). Only used by tests.
var SynonymGroups = [][]string{
	{"go", "travel", "move", "walk"},
	{"give", "hand", "provide", "supply"},
	{"say", "tell", "speak", "communicate"},
	{"think", "believe", "consider"},
	{"see", "observe", "notice"},
	{"make", "create", "build", "construct"},
	{"destroy", "demolish", "wreck"},
	{"change", "transform", "alter"},
	{"own", "possess", "hold"},
}
