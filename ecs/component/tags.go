package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type SoundBankTag struct{}

var SoundBankTagComponent = NewComponent[SoundBankTag]()
