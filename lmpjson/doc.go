package lmpjson

//Package lmpjson implements the serialization of the records read by golammps.
//It's planned use is handing the parsed files to programs that do the
//plotting or the statistics, which can be written in any language able
//to decode JSON. A JSON object is written per line, so the consumer can
//read it as a stream.
